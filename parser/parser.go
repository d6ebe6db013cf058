// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package parser reads class description files.
//
// The format is line oriented:
//
//	class Document
//	Properties
//	    FileName : QString
//	Slots
//	    save() : bool
//	Signals
//	    modified(bool changed)
//	class Dummy
//	$$$$$ END $$$$$
//
// A "class" header starts a new class. The keywords Properties, Slots and
// Signals select how the following lines are read. A class named Dummy, or
// the end marker line, stops parsing. Malformed property and slot lines are
// reported as [Diagnostic] values and skipped.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/albertocavalcante/stubgen/internal/naming"
	"github.com/albertocavalcante/stubgen/model"
	log "github.com/sirupsen/logrus"
)

const (
	// EndMarker is the line that ends the description.
	EndMarker = "$$$$$ END $$$$$"

	// StopClass is the placeholder class name that ends the description.
	StopClass = "Dummy"

	// Separator splits property and slot lines into name and type.
	Separator = " : "

	classKeyword = "class"
)

// Termination tells how parsing stopped.
type Termination int

const (
	EndOfInput Termination = iota
	EndMarkerReached
	StopClassReached
)

func (t Termination) String() string {
	switch t {
	case EndMarkerReached:
		return "end marker"
	case StopClassReached:
		return "stop class"
	default:
		return "end of input"
	}
}

// Result is the outcome of parsing one description.
type Result struct {
	// Table holds the committed classes in first-appearance order.
	Table *model.Table

	// Diagnostics lists skipped lines in input order.
	Diagnostics []Diagnostic

	// Termination tells how parsing stopped.
	Termination Termination

	// Lines is the number of lines consumed.
	Lines int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report diagnostics.
func WithLogger(logger log.FieldLogger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithSource names the input in log output.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.source = source
	}
}

// Parser holds the state of one parse. It is not reusable.
type Parser struct {
	logger log.FieldLogger
	source string

	table       *model.Table
	diagnostics []Diagnostic

	current *model.Class
	section Section
	line    int
	stopped bool
	reason  Termination
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger: log.StandardLogger(),
		table:  model.NewTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a description from r.
func Parse(r io.Reader, opts ...Option) (*Result, error) {
	return New(opts...).Parse(r)
}

// ParseFile reads the description file at path.
func ParseFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open description: %w", err)
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)
	res, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return res, nil
}

// Parse consumes r line by line until the end of input, the end marker or
// the stop class.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for !p.stopped && scanner.Scan() {
		p.Feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.Finish(), nil
}

// Feed processes one line. Lines fed after parsing stopped are ignored.
func (p *Parser) Feed(text string) {
	if p.stopped {
		return
	}
	p.line++

	if strings.TrimSpace(text) == "" {
		return
	}

	if fields := strings.Fields(text); fields[0] == classKeyword {
		p.startClass(text, fields)
		return
	}

	if section, ok := sectionFor(text); ok {
		p.section = section
		return
	}

	if strings.TrimSpace(text) == EndMarker {
		p.commit()
		p.stop(EndMarkerReached)
		return
	}

	if p.current == nil {
		return
	}

	switch p.section {
	case SectionProperties:
		p.parseProperty(text)
	case SectionSlots:
		p.parseSlot(text)
	case SectionSignals:
		p.current.Signals = append(p.current.Signals, strings.TrimSpace(text))
	}
}

// Finish commits the class in progress and returns the result.
func (p *Parser) Finish() *Result {
	p.commit()
	return &Result{
		Table:       p.table,
		Diagnostics: p.diagnostics,
		Termination: p.reason,
		Lines:       p.line,
	}
}

func (p *Parser) startClass(text string, fields []string) {
	p.commit()
	p.section = SectionNone

	if len(fields) < 2 || !naming.IsIdentifier(fields[1]) {
		p.report(InvalidClass, text)
		return
	}

	name := fields[1]
	if name == StopClass {
		p.stop(StopClassReached)
		return
	}

	p.current = &model.Class{Name: name, Line: p.line}
	p.logger.WithFields(p.fields()).Debug("class")
}

func (p *Parser) parseProperty(text string) {
	name, typ, ok := splitDeclaration(text)
	if !ok {
		p.report(MalformedProperty, text)
		return
	}
	p.current.Properties = append(p.current.Properties, model.Property{
		Type: typ,
		Name: name,
		Line: p.line,
	})
}

func (p *Parser) parseSlot(text string) {
	signature, typ, ok := splitDeclaration(text)
	if !ok {
		p.report(MalformedSlot, text)
		return
	}
	p.current.Slots = append(p.current.Slots, model.Slot{
		Type:      typ,
		Signature: signature,
		Line:      p.line,
	})
}

// splitDeclaration splits "name : type" into its trimmed parts.
func splitDeclaration(text string) (name, typ string, ok bool) {
	parts := strings.Split(text, Separator)
	if len(parts) != 2 {
		return "", "", false
	}
	name = strings.TrimSpace(parts[0])
	typ = strings.TrimSpace(parts[1])
	if name == "" || typ == "" {
		return "", "", false
	}
	return name, typ, true
}

func (p *Parser) commit() {
	if p.current == nil {
		return
	}
	p.table.Add(p.current)
	p.current = nil
}

func (p *Parser) stop(reason Termination) {
	p.current = nil
	p.stopped = true
	p.reason = reason
}

func (p *Parser) report(kind DiagnosticKind, text string) {
	d := Diagnostic{
		Kind: kind,
		Line: p.line,
		Text: text,
	}
	if p.current != nil {
		d.Class = p.current.Name
	}
	p.diagnostics = append(p.diagnostics, d)

	p.logger.WithFields(p.fields()).WithField("text", text).Warn(d.Message())
}

func (p *Parser) fields() log.Fields {
	f := log.Fields{"line": p.line}
	if p.current != nil {
		f["class"] = p.current.Name
	}
	if p.source != "" {
		f["file"] = p.source
	}
	return f
}
