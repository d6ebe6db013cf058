// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for class stub generators.
package generator

import (
	"context"

	"github.com/albertocavalcante/stubgen/model"
)

// Generator is the interface that all code generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces the output files for one class.
	Generate(ctx context.Context, c *model.Class, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "libkis", "sip").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists the default output extensions (e.g., [".h", ".cpp"]).
	FileExtensions []string
}
