// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pipeline runs one generation: parse the description, render every
// class with the selected generators, and emit the files.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/internal/emit"
	"github.com/albertocavalcante/stubgen/parser"
	log "github.com/sirupsen/logrus"
)

// Options configures a run.
type Options struct {
	// Input is the description file path.
	Input string

	// LibDir receives header and source files.
	LibDir string

	// BindingDir receives binding stubs. It is used as a path prefix.
	BindingDir string

	// Generators lists generator names in run order. Empty selects
	// [generator.DefaultGenerators].
	Generators []string

	// Config is passed to every generator.
	Config generator.Config

	// DryRun prints files instead of writing them.
	DryRun bool

	// Stdout receives dry-run output.
	Stdout io.Writer

	Logger log.FieldLogger
}

// Summary reports what a run did.
type Summary struct {
	// Classes lists generated classes in emission order.
	Classes []string

	// Files lists emitted paths in emission order.
	Files []string

	// ClassFiles maps each generated class to its emitted paths.
	ClassFiles map[string][]string

	// Diagnostics lists skipped description lines.
	Diagnostics []parser.Diagnostic

	// Termination tells how parsing stopped.
	Termination parser.Termination
}

// Run parses opts.Input and emits the files of every class. All files of a
// class are emitted before the next class is rendered. On error the files
// already written stay on disk and the returned Summary describes them.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	gens, err := generator.Select(opts.Generators)
	if err != nil {
		return nil, err
	}

	res, err := parser.ParseFile(opts.Input, parser.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ClassFiles:  make(map[string][]string),
		Diagnostics: res.Diagnostics,
		Termination: res.Termination,
	}
	logger.WithFields(log.Fields{
		"file":        opts.Input,
		"classes":     res.Table.Len(),
		"diagnostics": len(res.Diagnostics),
		"stop":        res.Termination.String(),
	}).Debug("parsed")

	cfg := opts.Config
	if cfg.Source == "" {
		cfg.Source = opts.Input
	}

	w := &emit.Writer{
		LibDir:     opts.LibDir,
		BindingDir: opts.BindingDir,
		DryRun:     opts.DryRun,
		Stdout:     opts.Stdout,
		Logger:     logger,
	}
	defer func() {
		summary.Files = w.Written()
	}()

	for _, c := range res.Table.Classes() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		before := len(w.Written())
		for _, g := range gens {
			out, err := g.Generate(ctx, c, cfg)
			if err != nil {
				return summary, fmt.Errorf("generate %s for %s: %w", g.Metadata().Name, c.Name, err)
			}
			if err := w.Write(out); err != nil {
				return summary, err
			}
		}

		summary.Classes = append(summary.Classes, c.Name)
		summary.ClassFiles[c.Name] = w.Written()[before:]
		logger.WithField("class", c.Name).Debug("generated")
	}

	return summary, nil
}
