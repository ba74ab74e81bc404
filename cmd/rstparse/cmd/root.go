// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the rstparse commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	traceLevel string
)

var rootCmd = &cobra.Command{
	Use:   "rstparse",
	Short: "Parse reStructuredText documents",
	Long: `rstparse parses reStructuredText documents and prints their
document tree as an outline or as YAML.

Diagnostics are printed to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected by the command line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rstparse.toml if present)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
}

// setupTracing routes the parser trace to the Go logger.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.rstdoc.parse": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func printError(err error) {
	pterm.Error.WithWriter(os.Stderr).Println(err)
}
