// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUncapitalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "capitalized", input: "Position", expected: "position"},
		{name: "already lowercase", input: "position", expected: "position"},
		{name: "empty", input: "", expected: ""},
		{name: "single char", input: "A", expected: "a"},
		{name: "all caps", input: "URI", expected: "uRI"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Uncapitalize(tc.input); got != tc.expected {
				t.Errorf("Uncapitalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestHeaderGuard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "camel case", input: "DocumentTools", expected: "DOCUMENTTOOLS"},
		{name: "already upper", input: "URI", expected: "URI"},
		{name: "underscore", input: "My_Class", expected: "MY_CLASS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HeaderGuard(tc.input); got != tc.expected {
				t.Errorf("HeaderGuard(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "Document", expected: true},
		{input: "_private", expected: true},
		{input: "Node2D", expected: true},
		{input: "", expected: false},
		{input: "2D", expected: false},
		{input: "Foo-Bar", expected: false},
		{input: "Foo::Bar", expected: false},
		{input: "Foo Bar", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsIdentifier(tc.input); got != tc.expected {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple", input: "a,b,c", expected: []string{"a", "b", "c"}},
		{name: "spaces", input: " a , b ", expected: []string{"a", "b"}},
		{name: "blanks dropped", input: "a,,b,", expected: []string{"a", "b"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, SplitList(tc.input)); diff != "" {
				t.Errorf("SplitList(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}
