package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/tachlehman/browserdump"
)

var (
	outputDir  string
	configPath string
	timeout    time.Duration
	browsers   cli.StringSlice
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "output-dir, o",
		Usage:       "directory where CSV files are written",
		Value:       ".",
		Destination: &outputDir,
	},
	cli.StringFlag{
		Name:        "config, c",
		Usage:       "optional INI file overriding profiles and output settings",
		Destination: &configPath,
	},
	cli.StringSliceFlag{
		Name:  "browser, b",
		Usage: "browser to extract from (chrome, edge); repeatable, default both",
		Value: &browsers,
	},
	cli.DurationFlag{
		Name:        "timeout, t",
		Usage:       "timeout for OS keychain/keyring helper calls",
		Value:       3 * time.Second,
		Destination: &timeout,
	},
}

func main() {
	app := cli.App{
		Name:      "browserdump",
		HelpName:  "browserdump",
		Usage:     "extract Chrome and Edge history, bookmarks and cookies to CSV",
		UsageText: "browserdump [options...]",
		Flags:     runFlags,
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cli.Context) error {
	opts := browserdump.Options{
		OutputDir: outputDir,
		Timeout:   timeout,
	}

	for _, raw := range browsers {
		switch browserdump.Browser(raw) {
		case browserdump.BrowserChrome, browserdump.BrowserEdge:
			opts.Browsers = append(opts.Browsers, browserdump.Browser(raw))
		default:
			return cli.NewExitError(fmt.Sprintf("browserdump: unsupported browser %q", raw), 2)
		}
	}

	if configPath != "" {
		var err error
		opts, err = browserdump.LoadConfig(configPath, opts)
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
	}

	sum, err := browserdump.Run(context.Background(), opts)
	printSummary(sum)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if sum.HasFailures() {
		return cli.NewExitError("browserdump: completed with failures", 1)
	}
	return nil
}

func printSummary(sum browserdump.Summary) {
	for _, out := range sum.Outputs {
		fmt.Printf("wrote %s (%s %s, %d records)\n", out.Path, out.Browser, out.Artifact, out.Records)
	}
	for _, sk := range sum.Skipped {
		reason := "unknown"
		switch {
		case errors.Is(sk.Err, browserdump.ErrProfileNotFound):
			reason = "profile not found"
		case errors.Is(sk.Err, browserdump.ErrArtifactMissing):
			reason = "no data (store missing)"
		case errors.Is(sk.Err, browserdump.ErrSchemaMismatch):
			reason = "schema mismatch (browser version drift)"
		case errors.Is(sk.Err, browserdump.ErrStoreUnreadable):
			reason = "store unreadable"
		}
		fmt.Fprintf(os.Stderr, "skipped %s %s: %s (%v)\n", sk.Browser, sk.Artifact, reason, sk.Err)
	}
	for _, w := range sum.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}
}
