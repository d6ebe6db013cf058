// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit writes generated files to the library and binding
// directories.
//
// Directories are never created. Existing files are overwritten. The first
// failed write stops the emission; files written before it stay on disk.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/albertocavalcante/stubgen/generator"
	log "github.com/sirupsen/logrus"
)

// Writer emits generator output.
type Writer struct {
	// LibDir receives library files as LibDir/<name>.
	LibDir string

	// BindingDir receives binding files as BindingDir+<name>. The path is
	// concatenated as given, so it normally ends with a separator.
	BindingDir string

	// DryRun prints files to Stdout instead of writing them.
	DryRun bool

	// Stdout receives dry-run output.
	Stdout io.Writer

	// Logger reports written files at debug level.
	Logger log.FieldLogger

	written []string
}

// Path returns the destination path of f.
func (w *Writer) Path(f generator.File) string {
	if f.Dest == generator.Binding {
		return w.BindingDir + f.Name
	}
	return filepath.Join(w.LibDir, f.Name)
}

// Write emits every file of out in order.
func (w *Writer) Write(out *generator.Output) error {
	for _, f := range out.Files {
		if err := w.WriteFile(f); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile emits a single file.
func (w *Writer) WriteFile(f generator.File) error {
	path := w.Path(f)

	if w.DryRun {
		stdout := w.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := fmt.Fprintf(stdout, "// ==> %s\n%s", path, f.Content); err != nil {
			return fmt.Errorf("print %s: %w", path, err)
		}
		w.written = append(w.written, path)
		return nil
	}

	if err := os.WriteFile(path, f.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.written = append(w.written, path)

	w.logger().WithFields(log.Fields{
		"file": path,
		"dest": f.Dest.String(),
		"size": len(f.Content),
	}).Debug("wrote")
	return nil
}

// Written returns the paths emitted so far.
func (w *Writer) Written() []string {
	return append([]string(nil), w.written...)
}

func (w *Writer) logger() log.FieldLogger {
	if w.Logger == nil {
		return log.StandardLogger()
	}
	return w.Logger
}
