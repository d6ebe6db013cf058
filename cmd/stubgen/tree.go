// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/albertocavalcante/stubgen/internal/pipeline"
	"github.com/ddddddO/gtree"
)

// printTree writes the emitted files grouped by class under the input name.
func printTree(w io.Writer, input string, summary *pipeline.Summary) error {
	root := gtree.NewRoot(input)
	for _, class := range summary.Classes {
		node := root.Add(class)
		for _, path := range summary.ClassFiles[class] {
			node.Add(path)
		}
	}
	return gtree.OutputFromRoot(w, root)
}
