package main

import (
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"
	"tractor.dev/jigger/internal/config"
	"tractor.dev/jigger/internal/slogger"
	"tractor.dev/toolkit-go/engine"
	"tractor.dev/toolkit-go/engine/cli"
)

func main() {
	engine.Run(Main{})
}

type Main struct{}

func (m *Main) InitializeCLI(root *cli.Command) {
	root.Usage = "jigger"
	root.AddCommand(injectCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(reportsCmd())
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	fatal(err)
	return cfg
}

func newLogger(cfg *config.Config) *slog.Logger {
	logger := slogger.New(os.Stderr, slogger.Options{
		Level:   slogger.ParseLevel(cfg.Logging.Level),
		Exclude: cfg.Logging.Exclude,
		Color:   term.IsTerminal(int(os.Stderr.Fd())),
	})
	slog.SetDefault(logger)
	return logger
}

func fatal(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
