// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/matthewdargan/rstdoc/ast"
	"github.com/matthewdargan/rstdoc/parse"
	"github.com/matthewdargan/rstdoc/scan"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var format string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the document tree of FILE",
	Long: `Parse FILE and print its document tree. A FILE of "-" reads
standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&format, "format", "f", "text", "output format [text|yaml]")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if traceLevel != "" {
		cfg.Trace = traceLevel
	}
	if err := setupTracing(cfg.Trace); err != nil {
		return err
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}
	name := args[0]
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	doc, err := parseFile(name, r, cfg, reporter(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if format == "yaml" {
		b, err := ast.MarshalYAML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return ast.Dump(w, doc)
}

// parseFile scans and parses the document read from r.
func parseFile(name string, r io.Reader, cfg *Config, rep parse.Reporter) (*ast.Document, error) {
	s := scan.New(name, r)
	s.SetTabWidth(cfg.TabWidth)
	toks, err := s.All()
	if err != nil {
		return nil, err
	}
	p := parse.New(parse.WithReporter(rep), parse.WithShortDirectives(cfg.ShortDirectives...))
	return p.Parse(toks)
}

// reporter prints diagnostics below the fatal level to w. Fatal
// diagnostics are returned as errors.
func reporter(w io.Writer) parse.Reporter {
	return parse.ReporterFunc(func(d parse.Diagnostic) {
		msg := d.Msg
		if d.Line != 0 {
			msg = fmt.Sprintf("%d:%d %s", d.Line, d.Pos, d.Msg)
		}
		switch d.Severity {
		case parse.Fatal:
		case parse.Error:
			pterm.Error.WithWriter(w).Println(msg)
		case parse.Warning:
			pterm.Warning.WithWriter(w).Println(msg)
		default:
			pterm.Info.WithWriter(w).Println(msg)
		}
	})
}
