package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/tilewalk/internal/app"
	"github.com/vinser/tilewalk/internal/config"
	"github.com/vinser/tilewalk/internal/telemetry"
)

var version = "dev"

func main() {
	cfg, err := config.Load(config.FromOS())
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}

	// Bubble Tea owns the terminal, so logs only go to a file when asked for.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tilewalk")
		if err != nil {
			println("Error:", err.Error())
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, version)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app.New(ctx, version, cfg), opts...)
	if _, err := p.Run(); err != nil {
		log.Printf("run: %v", err)
		println("Error:", err.Error())
		os.Exit(1)
	}
}
