package embeddata

import "embed"

//go:embed about.md
var embeddedFS embed.FS

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}
