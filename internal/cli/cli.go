// Package cli parses command-line arguments into a config.Config, with flags
// taking precedence over the environment.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/fairyhunter13/inkom-receipt/internal/config"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Parse applies args on top of base. It reports shouldExit when help was
// requested.
func Parse(args []string, output io.Writer, base config.Config) (cfg config.Config, shouldExit bool, err error) {
	fs := flag.NewFlagSet("receipt", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
receipt - prints an Inkom Emporium receipt for a product request.

Usage:
  receipt [options]

Options:
`)
		fs.PrintDefaults()
	}

	cfg = base
	fs.StringVar(&cfg.ProductsPath, "products", base.ProductsPath, "Path to the products catalog CSV.")
	fs.StringVar(&cfg.RequestPath, "request", base.RequestPath, "Path to the request (order) CSV.")
	fs.StringVar(&cfg.JournalDir, "journal", base.JournalDir, "Directory of the receipt journal. Empty disables it.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", base.MetricsFile, "Write run metrics to this file. Empty disables it.")
	fs.StringVar(&cfg.LogLevel, "log-level", base.LogLevel, "Logging level: debug, info, warn, error.")
	fs.StringVar(&cfg.LogFormat, "log-format", base.LogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, true, nil
		}
		return cfg, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return cfg, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
