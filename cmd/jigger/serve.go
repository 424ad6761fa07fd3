package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"tractor.dev/jigger/internal/config"
	"tractor.dev/jigger/report"
	"tractor.dev/toolkit-go/engine/cli"
)

func serveCmd() *cli.Command {
	cmd := &cli.Command{
		Usage: "serve [options]",
		Short: "serve a directory with the loader injected into index.html",
		Args:  cli.ExactArgs(0),
	}
	configPath := cmd.Flags().String("config", "", "config file (defaults to ./jigger.yaml)")
	addr := cmd.Flags().String("addr", "", "listen address (overrides server.addr)")

	cmd.Run = func(ctx *cli.Context, args []string) {
		cfg := loadConfig(*configPath)
		if *addr != "" {
			cfg.Server.Addr = *addr
		}
		logger := newLogger(cfg)

		store, err := report.OpenStore(cfg.Server.DB)
		fatal(err)
		defer store.Close()

		mux := http.NewServeMux()
		mux.Handle("/.report", report.NewHandler(store, logger))
		mux.Handle("/", pageHandler(cfg, logger))

		logger.Info("serving jigger dev server", "url", "http://"+cfg.Server.Addr, "dir", cfg.Server.Dir)
		fatal(http.ListenAndServe(cfg.Server.Addr, loggerMiddleware(logger, mux)))
	}
	return cmd
}

// pageHandler renders index.html with the loader injected and serves every
// other path from the configured directory.
func pageHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	files := http.FileServer(http.Dir(cfg.Server.Dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			files.ServeHTTP(w, r)
			return
		}

		var src io.Reader
		f, err := os.Open(filepath.Join(cfg.Server.Dir, "index.html"))
		switch {
		case err == nil:
			defer f.Close()
			src = f
		case !errors.Is(err, fs.ErrNotExist):
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		page, err := renderPage(src, cfg, "ws://"+r.Host+"/.report")
		if err != nil {
			logger.Error("render page", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("content-type", "text/html; charset=utf-8")
		w.Write(page)
	})
}

func loggerMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}
