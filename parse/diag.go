// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "fmt"

// Severity classifies diagnostics.
type Severity int

const (
	Notice Severity = iota
	Warning
	Error
	Fatal // aborts the parse
)

func (s Severity) String() string {
	switch s {
	case Notice:
		return "notice"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	}
	return fmt.Sprintf("severity%d", int(s))
}

// A Diagnostic is a message about the input, located at a line and column.
// Line and Pos are zero for diagnostics without location.
type Diagnostic struct {
	Severity Severity
	Msg      string
	Line     int
	Pos      int
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Severity, d.Msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Pos, d.Severity, d.Msg)
}

// A Reporter receives the diagnostics of a parse.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// traceReporter is the default reporter.
type traceReporter struct{}

func (traceReporter) Report(d Diagnostic) {
	switch d.Severity {
	case Fatal, Error:
		tracer().Errorf("%s", d)
	default:
		tracer().Infof("%s", d)
	}
}

// ParseError is returned for fatal diagnostics.
type ParseError struct {
	Diagnostic
}

func (e *ParseError) Error() string {
	return "rst: " + e.Diagnostic.String()
}
