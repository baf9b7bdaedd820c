package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/crimson-sun/keggkit/internal/cli"
	"github.com/crimson-sun/keggkit/internal/config"
	"github.com/crimson-sun/keggkit/internal/connector"
	"github.com/crimson-sun/keggkit/internal/connector/httpclient"
	"github.com/crimson-sun/keggkit/internal/connector/kegg"
	"github.com/crimson-sun/keggkit/internal/engine"
	"github.com/crimson-sun/keggkit/internal/logging"
	"github.com/crimson-sun/keggkit/internal/model"
	"github.com/crimson-sun/keggkit/internal/output/table"
	"github.com/crimson-sun/keggkit/internal/pipeline"
	"github.com/crimson-sun/keggkit/internal/progress"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes kegg-info and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "kegg-info: %v\n", err)
		return 2
	}

	opts, shouldExit, err := cli.ParseInfo(args, cfg, stderr)
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
	cfg = opts.Config

	logging.Init(cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	client := httpclient.New(cfg.Remote.BaseURL,
		httpclient.WithTimeout(cfg.Remote.Timeout),
		httpclient.WithRetries(cfg.Remote.MaxRetries),
		httpclient.WithUserAgent("keggkit/"+config.Version),
	)

	var prog pipeline.Progress = progress.Nop{}
	if cfg.Progress {
		prog = progress.New(stderr, "Retrieving info...")
	}

	p := pipeline.New(kegg.New(client), engine.New(), prog)

	slog.Info("retrieving entries", "ids", len(opts.IDs), "base_url", cfg.Remote.BaseURL)
	rows, err := p.Run(ctx, opts.IDs)
	if err != nil {
		if errors.Is(err, connector.ErrInvalidIdentifier) {
			color.New(color.FgRed, color.Bold).Fprintf(stderr,
				"Invalid KEGG identifier, please check the ids list: %v\n", err)
			return 1
		}
		slog.Error("retrieval failed", "error", err)
		return 1
	}

	path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("ids_translated_KEGG_%s.csv", opts.Name))
	if err := table.Write(path, model.InfoColumns, rows); err != nil {
		slog.Error("write failed", "error", err)
		return 1
	}
	slog.Info("results written", "path", path, "rows", len(rows))
	return 0
}
