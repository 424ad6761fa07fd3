package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"tractor.dev/jigger/asset"
	"tractor.dev/jigger/report"
	"tractor.dev/toolkit-go/engine/cli"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	typeStyles = map[asset.EventType]lipgloss.Style{
		asset.EventBatch: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		asset.EventLoad:  lipgloss.NewStyle(),
		asset.EventError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		asset.EventReady: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
)

func reportsCmd() *cli.Command {
	cmd := &cli.Command{
		Usage: "reports [options] [session]",
		Short: "list stored load reports",
		Args:  cli.MaxArgs(1),
	}
	configPath := cmd.Flags().String("config", "", "config file (defaults to ./jigger.yaml)")

	cmd.Run = func(ctx *cli.Context, args []string) {
		cfg := loadConfig(*configPath)
		newLogger(cfg)

		store, err := report.OpenStore(cfg.Server.DB)
		fatal(err)
		defer store.Close()

		styled := term.IsTerminal(int(os.Stdout.Fd()))
		if len(args) == 0 {
			sessions, err := store.Sessions()
			fatal(err)
			for _, s := range sessions {
				recs, err := store.List(s)
				fatal(err)
				writeSession(ctx, s, recs, styled)
			}
			return
		}
		recs, err := store.List(args[0])
		fatal(err)
		writeRecords(ctx, recs, styled)
	}
	return cmd
}

// writeSession prints one summary line: the session, its record count and
// the last state it reported.
func writeSession(w io.Writer, session string, recs []report.Record, styled bool) {
	last := "none"
	if len(recs) > 0 {
		r := recs[len(recs)-1]
		last = fmt.Sprintf("%s %d/%d", r.Type, r.Loaded, r.Pending)
	}
	line := fmt.Sprintf("%-20s %4d  %s", session, len(recs), last)
	if styled {
		line = titleStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}

func writeRecords(w io.Writer, recs []report.Record, styled bool) {
	for _, r := range recs {
		ts := r.Time.Format("15:04:05")
		typ := fmt.Sprintf("%-5s", r.Type)
		progress := fmt.Sprintf("%d/%d", r.Loaded, r.Pending)
		if styled {
			ts = dimStyle.Render(ts)
			typ = typeStyles[r.Type].Render(typ)
		}
		line := fmt.Sprintf("%4d %s %s %-7s %s", r.Seq, ts, typ, progress, r.URL)
		if r.Err != "" {
			line += " " + r.Err
		}
		fmt.Fprintln(w, line)
	}
}
