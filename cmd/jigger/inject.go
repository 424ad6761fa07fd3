package main

import (
	"io"
	"os"

	"tractor.dev/jigger"
	"tractor.dev/jigger/asset/htmldom"
	"tractor.dev/toolkit-go/engine/cli"
)

func injectCmd() *cli.Command {
	cmd := &cli.Command{
		Usage: "inject [options] <page.html>",
		Short: "write a page with the startup assets already inserted",
		Args:  cli.ExactArgs(1),
	}
	configPath := cmd.Flags().String("config", "", "config file (defaults to ./jigger.yaml)")
	out := cmd.Flags().String("out", "", "output file (defaults to stdout)")

	cmd.Run = func(ctx *cli.Context, args []string) {
		cfg := loadConfig(*configPath)
		logger := newLogger(cfg)

		f, err := os.Open(args[0])
		fatal(err)
		doc, err := htmldom.Parse(f)
		f.Close()
		fatal(err)

		s := jigger.Prerender(doc, cfg, logger)
		logger.Info("injected", "page", args[0], "batch", len(s.Snapshot().URLs))

		var w io.Writer = ctx
		if *out != "" {
			f, err := os.Create(*out)
			fatal(err)
			defer f.Close()
			w = f
		}
		fatal(doc.Render(w))
	}
	return cmd
}
