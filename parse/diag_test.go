// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: Warning, Msg: "Bad.", Line: 3, Pos: 7}
	assert.Equal(t, "3:7: warning: Bad.", d.String())
	d = Diagnostic{Severity: Fatal, Msg: "Worse."}
	assert.Equal(t, "fatal: Worse.", d.String())
	assert.Equal(t, "rst: fatal: Worse.", (&ParseError{d}).Error())
	assert.Equal(t, "severity9", Severity(9).String())
}

func TestReporterOrder(t *testing.T) {
	var sevs []Severity
	r := ReporterFunc(func(d Diagnostic) { sevs = append(sevs, d.Severity) })
	_, err := New(WithReporter(r)).Parse(tokens(t, "Title\n===\n\n=====  =====\n1      2\n====  ======\n"))
	assert.NoError(t, err)
	assert.Equal(t, []Severity{Notice, Warning}, sevs)
}
