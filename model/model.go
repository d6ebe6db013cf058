// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the data structures produced by parsing a class
// description file.
//
// A description file lists classes together with their properties, slots and
// signals. Each class becomes a [Class]; the collection of classes is kept in
// a [Table] that preserves the order in which class names first appeared.
package model

import (
	"slices"

	"github.com/albertocavalcante/stubgen/internal/naming"
)

// Class is one parsed class description.
type Class struct {
	// Name is the class identifier (e.g., "Document", "Node").
	Name string

	// Properties lists the typed attributes in declaration order.
	Properties []Property

	// Slots lists the callable stubs in declaration order.
	Slots []Slot

	// Signals lists notification signatures (e.g., "nodeChanged(Node *node)")
	// in declaration order.
	Signals []string

	// Line is the line number of the class header in the description file.
	Line int
}

// Property is a named, typed attribute rendered as a getter/setter pair.
type Property struct {
	// Type is the type expression, copied verbatim into templates.
	Type string

	// Name is the property name as written (e.g., "FileName").
	Name string

	Line int
}

// Getter returns the getter name: the property name with its first
// character lowercased ("FileName" -> "fileName").
func (p Property) Getter() string {
	return naming.Uncapitalize(p.Name)
}

// Setter returns the setter name: "set" followed by the unchanged property
// name ("FileName" -> "setFileName").
func (p Property) Setter() string {
	return "set" + p.Name
}

// Slot is a typed callable stub.
type Slot struct {
	// Type is the return type expression.
	Type string

	// Signature is the slot name plus parameter list, copied verbatim
	// (e.g., "save(const QString &path)").
	Signature string

	Line int
}

// Table maps class names to classes, keeping first-appearance order.
type Table struct {
	classes map[string]*Class
	order   []string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{classes: make(map[string]*Class)}
}

// Add stores c under its name. A class re-declared under an existing name
// replaces the earlier descriptor but keeps its first position.
func (t *Table) Add(c *Class) {
	if _, exists := t.classes[c.Name]; !exists {
		t.order = append(t.order, c.Name)
	}
	t.classes[c.Name] = c
}

// Get returns the class with the given name.
func (t *Table) Get(name string) (*Class, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// Len returns the number of classes.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns class names in first-appearance order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// Classes returns the classes in first-appearance order.
func (t *Table) Classes() []*Class {
	out := make([]*Class, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.classes[name])
	}
	return out
}
