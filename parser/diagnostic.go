// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package parser

import "fmt"

// DiagnosticKind classifies a recoverable parse problem.
type DiagnosticKind string

const (
	// MalformedProperty is a properties line that does not split into
	// exactly two non-empty parts on " : ".
	MalformedProperty DiagnosticKind = "property"

	// MalformedSlot is a slots line that does not split into exactly two
	// non-empty parts on " : ".
	MalformedSlot DiagnosticKind = "slot"

	// InvalidClass is a class header without a usable class name.
	InvalidClass DiagnosticKind = "class"
)

// Diagnostic reports a skipped line. Parsing continues after it.
type Diagnostic struct {
	Kind DiagnosticKind

	// Line is the 1-based line number in the description file.
	Line int

	// Class is the class being parsed, empty before the first class.
	Class string

	// Text is the offending line without its line terminator.
	Text string
}

// Message returns the human readable description.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case MalformedProperty:
		return "could not parse property"
	case MalformedSlot:
		return "could not parse slot"
	case InvalidClass:
		return "invalid class declaration"
	default:
		return "could not parse line"
	}
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	if d.Class == "" {
		return fmt.Sprintf("line %d: %s: %q", d.Line, d.Message(), d.Text)
	}
	return fmt.Sprintf("line %d (%s): %s: %q", d.Line, d.Class, d.Message(), d.Text)
}
