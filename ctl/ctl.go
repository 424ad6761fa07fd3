// Package ctl drives a session with text commands, the form a page or a
// debugging console sends them in: "batch a.js b.css", "status".
package ctl

import (
	"context"
	"fmt"
	"strings"

	"tractor.dev/jigger/asset"
	"tractor.dev/toolkit-go/engine/cli"
)

// Command returns the command tree for s.
func Command(s *asset.Session) *cli.Command {
	root := &cli.Command{
		Usage: "ctl",
		Short: "control the asset loader",
	}
	root.AddCommand(loadCmd(s))
	root.AddCommand(batchCmd(s))
	root.AddCommand(statusCmd(s))
	root.AddCommand(clsCmd(s))
	return root
}

// Exec runs one command line against s.
func Exec(ctx context.Context, s *asset.Session, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	return cli.Execute(ctx, Command(s), args)
}

func loadCmd(s *asset.Session) *cli.Command {
	return &cli.Command{
		Usage: "load <kind> <id> <url> [head|tail] [first|last|<after-id>]",
		Short: "load a single asset without deduplication",
		Args:  cli.MinArgs(3),
		Run: func(ctx *cli.Context, args []string) {
			r := asset.Request{Kind: args[0], ID: args[1], URL: args[2]}
			if len(args) > 3 {
				r.Tail = args[3] == "tail"
			}
			if len(args) > 4 {
				r.Anchor = asset.ParseAnchor(args[4])
			}
			fmt.Fprintln(ctx, s.Load(r))
		},
	}
}

func batchCmd(s *asset.Session) *cli.Command {
	return &cli.Command{
		Usage: "batch <url>...",
		Short: "load assets not requested before and track them to readiness",
		Args:  cli.MinArgs(1),
		Run: func(ctx *cli.Context, args []string) {
			if err := s.LoadBatch(args); err != nil {
				fmt.Fprintln(ctx.Errout(), err)
			}
		},
	}
}

func statusCmd(s *asset.Session) *cli.Command {
	return &cli.Command{
		Usage: "status",
		Short: "print counters, state and requested urls",
		Args:  cli.ExactArgs(0),
		Run: func(ctx *cli.Context, args []string) {
			snap := s.Snapshot()
			fmt.Fprintf(ctx, "state %s\nloaded %d/%d\nready %v\n", snap.State, snap.Loaded, snap.Pending, snap.Ready)
			for _, url := range snap.URLs {
				fmt.Fprintln(ctx, url)
			}
		},
	}
}

func clsCmd(s *asset.Session) *cli.Command {
	return &cli.Command{
		Usage: "cls <element-id> <set|clear|add|remove|replace|toggle> [class] [class]",
		Short: "change the classes of an element",
		Args:  cli.MinArgs(2),
		Run: func(ctx *cli.Context, args []string) {
			var c1, c2 string
			if len(args) > 2 {
				c1 = args[2]
			}
			if len(args) > 3 {
				c2 = args[3]
			}
			el := s.Document().ElementByID(args[0])
			if err := asset.ApplyClass(el, asset.ClassAction(args[1]), c1, c2); err != nil {
				fmt.Fprintln(ctx.Errout(), err)
			}
		},
	}
}
