// SPDX-License-Identifier: MIT

// Package testutil provides golden-file testing utilities for stubgen.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Options contains generator options parsed from an
	// "Options: key=value; key=value" line in the description.
	Options map[string]string

	// Diagnostics is the expected number of parse diagnostics from a
	// "Diagnostics: N" line, or -1 when the archive does not say.
	Diagnostics int

	// Input is the contents of "api.txt".
	Input []byte

	// Want maps relative paths (e.g., "lib/Node.h") to expected content.
	Want map[string][]byte
}

// InputFile is the archive member holding the class description.
const InputFile = "api.txt"

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "api.txt" file with the class description
//   - One or more "want/<dir>/<filename>" files with expected output
//
// The description may contain "Options: key=value; ..." and
// "Diagnostics: N" lines.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Options:     make(map[string]string),
		Diagnostics: -1,
		Want:        make(map[string][]byte),
	}

	if err := c.parseDescription(); err != nil {
		return nil, err
	}

	// Process files
	for _, f := range ar.Files {
		switch {
		case f.Name == InputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.Want[relPath] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected %s or want/*)", f.Name, InputFile)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", InputFile)
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseDescription extracts the "Options:" and "Diagnostics:" lines.
func (c *Case) parseDescription() error {
	for line := range strings.SplitSeq(c.Description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Options:"):
			for opt := range strings.SplitSeq(strings.TrimPrefix(line, "Options:"), ";") {
				opt = strings.TrimSpace(opt)
				if opt == "" {
					continue
				}
				key, value, ok := strings.Cut(opt, "=")
				if !ok {
					return fmt.Errorf("malformed option %q (expected key=value)", opt)
				}
				c.Options[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
		case strings.HasPrefix(line, "Diagnostics:"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Diagnostics:")))
			if err != nil {
				return fmt.Errorf("malformed diagnostics count: %w", err)
			}
			c.Diagnostics = n
		}
	}
	return nil
}

// GenerateFunc is a function that generates output from a class
// description. It returns a map of relative path to content and the number
// of parse diagnostics.
type GenerateFunc func(input []byte, options map[string]string) (map[string][]byte, int, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, diagnostics, err := generate(c.Input, c.Options)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if c.Diagnostics >= 0 && diagnostics != c.Diagnostics {
		t.Errorf("got %d diagnostics, want %d", diagnostics, c.Diagnostics)
	}

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	// Compare contents
	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		// Normalize line endings and trailing whitespace
		wantNorm := normalizeContent(wantContent)
		gotNorm := normalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	// Keep comment and api.txt
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if f.Name == InputFile {
			result.Files = append(result.Files, f)
			break
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}
