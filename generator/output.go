// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Destination selects the directory a generated file is written to.
type Destination int

const (
	// Library files go to the library directory (interface and
	// implementation files).
	Library Destination = iota

	// Binding files go to the binding stub directory.
	Binding
)

func (d Destination) String() string {
	if d == Binding {
		return "binding"
	}
	return "library"
}

// File is one generated file.
type File struct {
	Dest    Destination
	Name    string
	Content []byte
}

// Output contains generated files in generation order.
type Output struct {
	Files []File
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{}
}

// Add adds a file to the output.
func (o *Output) Add(dest Destination, name string, content []byte) {
	o.Files = append(o.Files, File{Dest: dest, Name: name, Content: content})
}

// Append adds all files of other.
func (o *Output) Append(other *Output) {
	if other == nil {
		return
	}
	o.Files = append(o.Files, other.Files...)
}

// Lookup returns the content of the named file.
func (o *Output) Lookup(name string) ([]byte, bool) {
	for _, f := range o.Files {
		if f.Name == name {
			return f.Content, true
		}
	}
	return nil, false
}

// Single returns an Output with a single file.
func Single(dest Destination, name string, content []byte) *Output {
	return &Output{Files: []File{{Dest: dest, Name: name, Content: content}}}
}
