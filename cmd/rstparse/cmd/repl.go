// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/matthewdargan/rstdoc/ast"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	prompt         = "rst > "
	continuePrompt = "... > "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse documents typed interactively",
	Long: `Read reStructuredText from the terminal. A line holding a single "."
parses the lines typed so far and prints their document tree.
Quit with <ctrl>D.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
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
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	s := &session{r: rl, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), cfg: cfg}
	s.run()
	pterm.Info.Println("Good bye!")
	return nil
}

type lineReader interface {
	Readline() (string, error)
}

// A session collects lines and parses them on request.
type session struct {
	r      lineReader
	out    io.Writer
	errOut io.Writer
	cfg    *Config
	buf    strings.Builder
}

// run reads lines until the reader fails, usually with io.EOF.
func (s *session) run() {
	for {
		line, err := s.r.Readline()
		if err != nil {
			return
		}
		if strings.TrimSpace(line) != "." {
			s.buf.WriteString(line)
			s.buf.WriteByte('\n')
			s.setPrompt(continuePrompt)
			continue
		}
		s.parse()
		s.buf.Reset()
		s.setPrompt(prompt)
	}
}

func (s *session) setPrompt(p string) {
	if rl, ok := s.r.(interface{ SetPrompt(string) }); ok {
		rl.SetPrompt(p)
	}
}

// parse prints the tree of the collected lines. Errors are printed and
// do not end the session.
func (s *session) parse() {
	doc, err := parseFile("<repl>", strings.NewReader(s.buf.String()), s.cfg, reporter(s.errOut))
	if err != nil {
		pterm.Error.WithWriter(s.errOut).Println(err)
		return
	}
	if err := ast.Dump(s.out, doc); err != nil {
		pterm.Error.WithWriter(s.errOut).Println(err)
	}
}
