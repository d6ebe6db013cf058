// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Option keys understood by the bundled generators.
const (
	OptionCopyright      = "copyright"
	OptionGuardPrefix    = "guard-prefix"
	OptionExportMacro    = "export-macro"
	OptionExportHeader   = "export-header"
	OptionLibraryHeader  = "library-header"
	OptionBaseClass      = "base-class"
	OptionBindingImports = "binding-imports"
	OptionHeaderExt      = "header-ext"
	OptionSourceExt      = "source-ext"
	OptionBindingExt     = "binding-ext"
)

// Config contains generator configuration.
type Config struct {
	// Source is the description file path (for log output).
	Source string

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// DefaultOptions holds the option values used when a key is not configured.
// They reproduce the libkis scripting API layout.
var DefaultOptions = map[string]string{
	OptionCopyright:      "2016 Boudewijn Rempt <boud@valdyas.org>",
	OptionGuardPrefix:    "LIBKIS_",
	OptionExportMacro:    "KRITALIBKIS_EXPORT",
	OptionExportHeader:   "kritalibkis_export.h",
	OptionLibraryHeader:  "kritalibkis.h",
	OptionBaseClass:      "QObject",
	OptionBindingImports: "QtCore/QtCoremod.sip,QtGui/QtGuimod.sip,QtWidgets/QtWidgetsmod.sip",
	OptionHeaderExt:      "h",
	OptionSourceExt:      "cpp",
	OptionBindingExt:     "sip",
}

// Value returns the configured option, falling back to [DefaultOptions].
func (c Config) Value(key string) string {
	return c.Option(key, DefaultOptions[key])
}

// FileName joins a class name and an extension option ("Node", "h" -> "Node.h").
func (c Config) FileName(className, extKey string) string {
	ext := c.Value(extKey)
	if ext == "" {
		return className
	}
	return className + "." + ext
}
