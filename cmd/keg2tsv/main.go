package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/crimson-sun/keggkit/internal/cli"
	"github.com/crimson-sun/keggkit/internal/config"
	"github.com/crimson-sun/keggkit/internal/keg"
	"github.com/crimson-sun/keggkit/internal/logging"
	"github.com/crimson-sun/keggkit/internal/output/table"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes keg2tsv and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "keg2tsv: %v\n", err)
		return 2
	}

	opts, shouldExit, err := cli.ParseKeg(args, cfg, stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Reported {
				fmt.Fprintln(stderr, exitErr.Message)
			}
			return exitErr.Code
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if shouldExit {
		return 0
	}

	logging.Init(opts.Config.Log.Format, logging.ParseLevel(opts.Config.Log.Level))

	h, err := keg.ParseFile(opts.KegFile, opts.Dedup)
	if err != nil {
		slog.Error("parse failed", "error", err)
		return 1
	}

	rows := h.Rows()
	if err := table.Write(opts.Out, keg.Columns, rows, table.WithDelimiter('\t')); err != nil {
		slog.Error("write failed", "error", err)
		return 1
	}
	slog.Info("table written", "path", opts.Out, "rows", len(rows), "records", h.Len())
	return 0
}
