// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matthewdargan/rstdoc/parse"
	"github.com/matthewdargan/rstdoc/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "rstparse.toml", "short_directives = [\"note\", \"todo\"]\ntab_width = 4\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"note", "todo"}, cfg.ShortDirectives)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.Equal(t, "Error", cfg.Trace)
	assert.Equal(t, "todo", cfg.ShortDirectives[1])
	assert.Equal(t, "notice", parse.DefaultShortDirectives[1])
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, "rstparse.toml", "tab_width = 0\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, scan.DefaultTabWidth, cfg.TabWidth)
	assert.Equal(t, parse.DefaultShortDirectives, cfg.ShortDirectives)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeFile(t, "rstparse.toml", "tab_width = \"wide\"\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "doc.rst", "Para\n")
	out, err := execute(t, "parse", "-f", "text", path)
	require.NoError(t, err)
	assert.Equal(t, "Document\n  Paragraph indent=\"0\"\n    Text \"Para\"\n", out)

	out, err = execute(t, "parse", "-f", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "type: Paragraph")
}

func TestParseCommandErrors(t *testing.T) {
	path := writeFile(t, "bad.rst", "=====  =====  abc\n")
	_, err := execute(t, "parse", "-f", "text", path)
	var pe *parse.ParseError
	assert.ErrorAs(t, err, &pe)

	_, err = execute(t, "parse", "-f", "xml", path)
	assert.EqualError(t, err, `unknown format "xml"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rstparse v"+Version)
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter(&buf)
	rep.Report(parse.Diagnostic{Severity: parse.Warning, Msg: "Title underline too short.", Line: 2, Pos: 1})
	rep.Report(parse.Diagnostic{Severity: parse.Notice, Msg: "No location."})
	rep.Report(parse.Diagnostic{Severity: parse.Fatal, Msg: "Unreachable."})
	out := buf.String()
	assert.Contains(t, out, "2:1 Title underline too short.")
	assert.Contains(t, out, "No location.")
	assert.NotContains(t, out, "0:0")
	assert.NotContains(t, out, "Unreachable.")
}

type lines []string

func (l *lines) Readline() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}

func TestSession(t *testing.T) {
	in := lines{"First", "", "  quoted", ".", "=====  =====  x", ".", "Last", "."}
	var out, errOut bytes.Buffer
	s := &session{r: &in, out: &out, errOut: &errOut, cfg: defaultConfig()}
	s.run()
	want := "Document\n  Paragraph indent=\"0\"\n    Text \"First\"\n" +
		"  Blockquote indent=\"2\"\n    Paragraph indent=\"2\"\n      Text \"quoted\"\n" +
		"Document\n  Paragraph indent=\"0\"\n    Text \"Last\"\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, errOut.String(), "Invalid token in simple table specification.")
}
