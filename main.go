// Package main provides the tdash command-line tool, a one-shot terminal
// dashboard showing battery, memory, storage, public IP, environment details
// and the current weather.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tdash/config"
	"tdash/dashboard"
	"tdash/errors"
	"tdash/layout"
	"tdash/logger"
	"tdash/sysinfo"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w followed by exactly one newline. Structured
// errors already end in one; cobra's own (unknown flag, ...) do not.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, strings.TrimRight(err.Error(), "\n"))
}

// newRootCmd builds the tdash command. The dashboard is written to out.
func newRootCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tdash",
		Short: "Print a one-shot device and weather dashboard",
		Long: `Print a snapshot of battery, memory, storage, public IP, environment
details and the current weather, then exit.

Panels sit side by side on terminals at least 100 columns wide and are
stacked on narrower ones. Lookups that fail show a placeholder instead.

Settings are read from TDASH_* environment variables, for example:
  TDASH_NO_NETWORK=1 tdash
  TDASH_STORAGE_PATH=/ tdash`,
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out)
		},
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New("[tdash]", cfg.Debug)

	r := &dashboard.Renderer{
		Source: newCollector(cfg, log),
		Title:  cfg.Title,
		Now:    time.Now,
		Log:    log,
	}
	return r.Run(ctx, out, layout.DetectWidth(cfg.Width, log))
}

// newCollector builds a fact collector from the configuration.
func newCollector(cfg *config.Config, log logger.Logger) *sysinfo.Collector {
	c := sysinfo.NewCollector(log)
	c.StoragePath = cfg.StoragePath
	c.IPURL = cfg.IPURL
	c.WeatherURL = cfg.WeatherURL
	c.IPTimeout = cfg.IPTimeout
	c.WeatherTimeout = cfg.WeatherTimeout
	c.NoNetwork = cfg.NoNetwork
	c.Strict = cfg.Strict
	return c
}

// usageError converts cobra's argument errors into the structured form.
func usageError(err error) error {
	return errors.WrapWithCode(err, errors.ErrUsage,
		"tdash takes no arguments",
		"Run 'tdash' on its own, or 'tdash --help' for settings.")
}
