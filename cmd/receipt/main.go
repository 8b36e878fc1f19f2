// Package main prints an Inkom Emporium receipt for the products listed in a
// request file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fairyhunter13/inkom-receipt/internal/app"
	"github.com/fairyhunter13/inkom-receipt/internal/cli"
	"github.com/fairyhunter13/inkom-receipt/internal/config"
	"github.com/fairyhunter13/inkom-receipt/internal/obs"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out, config.Load())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	obs.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if _, err := app.New(cfg, out).Run(); err != nil {
		obs.Logger.Error("receipt_failed", "error", err)
		return err
	}
	return nil
}
