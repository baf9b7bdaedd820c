package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/crimson-sun/keggkit/internal/config"
	"github.com/crimson-sun/keggkit/internal/keg"
	"github.com/crimson-sun/keggkit/internal/pipeline"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	// Reported is set when the flag set has already written the message
	// and usage to its output.
	Reported bool
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// InfoOptions is the parsed command line of kegg-info.
type InfoOptions struct {
	IDs    []string
	Name   string
	Config config.Config
}

// KegOptions is the parsed command line of keg2tsv.
type KegOptions struct {
	KegFile string
	Out     string
	Dedup   keg.DedupPolicy
	Config  config.Config
}

// DefaultKegOut is the output path of keg2tsv when --out is not given.
const DefaultKegOut = "mapp_K03.tsv"

// ParseInfo processes kegg-info arguments on top of cfg. It returns the
// options, a boolean indicating if the program should exit cleanly, or an
// ExitError. Flags may appear before or after the ids_list argument.
func ParseInfo(args []string, cfg config.Config, output io.Writer) (*InfoOptions, bool, error) {
	slog.Debug("CLI parser started.", "command", "kegg-info")
	fs := flag.NewFlagSet("kegg-info", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
KEGG Info - translate KEGG identifiers into Name, Description and Class.

Usage:
  kegg-info [options] IDS_LIST

Arguments:
  IDS_LIST
    Comma-separated KEGG identifiers, e.g. hsa:1234,path:map00010

Options:
`)
		fs.PrintDefaults()
	}

	opts := &InfoOptions{Config: cfg}
	fs.StringVar(&opts.Name, "name", "results", "Suffix of the output file ids_translated_KEGG_{name}.csv.")
	bindCommon(fs, &opts.Config)
	fs.StringVar(&opts.Config.Output.Dir, "out-dir", cfg.Output.Dir, "Directory for the output file.")
	fs.StringVar(&opts.Config.Remote.BaseURL, "base-url", cfg.Remote.BaseURL, "KEGG REST base URL.")
	fs.DurationVar(&opts.Config.Remote.Timeout, "timeout", cfg.Remote.Timeout, "Per-request timeout.")
	fs.IntVar(&opts.Config.Remote.MaxRetries, "retries", cfg.Remote.MaxRetries, "Retries on 429/5xx responses. 0 disables retries.")
	noProgress := fs.Bool("no-progress", !cfg.Progress, "Disable the progress bar.")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Reported: true}
	}
	opts.Config.Progress = !*noProgress

	switch len(positional) {
	case 0:
		fs.Usage()
		return nil, false, usageError("kegg-info: missing required argument IDS_LIST")
	case 1:
	default:
		return nil, false, usageError("kegg-info: unexpected arguments: %s", strings.Join(positional[1:], " "))
	}
	opts.IDs = pipeline.SplitIDs(positional[0])

	if err := opts.Config.Validate(); err != nil {
		return nil, false, usageError("kegg-info: invalid configuration: %v", err)
	}
	slog.Debug("CLI parser finished successfully.", "ids", len(opts.IDs), "name", opts.Name)
	return opts, false, nil
}

// ParseKeg processes keg2tsv arguments on top of cfg, with the same return
// contract as ParseInfo.
func ParseKeg(args []string, cfg config.Config, output io.Writer) (*KegOptions, bool, error) {
	slog.Debug("CLI parser started.", "command", "keg2tsv")
	fs := flag.NewFlagSet("keg2tsv", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
keg2tsv - flatten a KEGG .keg hierarchy into a KO table.

Usage:
  keg2tsv --keg_file FILE [options]

Options:
`)
		fs.PrintDefaults()
	}

	opts := &KegOptions{Config: cfg}
	fs.StringVar(&opts.KegFile, "keg_file", "", "Path to the .keg file to extract info from (gzip accepted).")
	fs.StringVar(&opts.KegFile, "keg-file", "", "Alias of --keg_file.")
	fs.StringVar(&opts.Out, "out", DefaultKegOut, "Output TSV path.")
	dedup := fs.String("dedup", keg.DedupGlobal.String(), "KO de-duplication policy: 'global', 'scoped', or 'none'.")
	bindCommon(fs, &opts.Config)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error(), Reported: true}
	}
	if len(positional) > 0 {
		return nil, false, usageError("keg2tsv: unexpected arguments: %s", strings.Join(positional, " "))
	}
	if opts.KegFile == "" {
		fs.Usage()
		return nil, false, usageError("keg2tsv: --keg_file is required")
	}
	if opts.Out == "" {
		return nil, false, usageError("keg2tsv: --out must not be empty")
	}
	if opts.Dedup, err = keg.ParseDedupPolicy(*dedup); err != nil {
		return nil, false, usageError("keg2tsv: %v", err)
	}
	if err := opts.Config.ValidateLog(); err != nil {
		return nil, false, usageError("keg2tsv: invalid configuration: %v", err)
	}
	slog.Debug("CLI parser finished successfully.", "keg_file", opts.KegFile, "dedup", opts.Dedup)
	return opts, false, nil
}

func bindCommon(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log output format. Options: 'text' or 'json'.")
}

// parseInterspersed parses flags that may appear before, between or after
// positional arguments. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
