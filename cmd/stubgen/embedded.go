// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/stubgen/generator"
	"github.com/albertocavalcante/stubgen/generators/libkis"
	"github.com/albertocavalcante/stubgen/generators/sip"
)

func init() {
	generator.Register(libkis.NewGenerator())
	generator.Register(sip.NewGenerator())
}
