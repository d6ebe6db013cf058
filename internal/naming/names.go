// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming holds the identifier rules shared by the parser and the
// generators.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Uncapitalize returns name with the first letter lowercased.
// Returns empty string for empty input.
func Uncapitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// HeaderGuard returns the include guard token for a class name.
func HeaderGuard(name string) string {
	return strings.ToUpper(name)
}

// IsIdentifier reports whether name is usable as a type identifier:
// a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// SplitList splits a comma separated option value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
