// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"errors"
	"fmt"
	"go/ast"
	"iter"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/uselessassign/internal/report"
)

var errNoFileInfo = errors.New("no position information")

// sourceFile is a file of the pass together with its traversal root.
type sourceFile struct {
	cursor    inspector.Cursor
	name      string
	generated bool
}

// sourceFiles yields the files of the pass in order.
// Files without position information are reported as internal errors and skipped.
func sourceFiles(p *analysis.Pass, in *inspector.Inspector) iter.Seq[sourceFile] {
	return func(yield func(sourceFile) bool) {
		for c := range in.Root().Children() {
			file, ok := c.Node().(*ast.File)
			if !ok {
				continue
			}

			handle := p.Fset.File(file.FileStart)
			if handle == nil {
				report.InternalError(p, file, fmt.Errorf("file %s: %w", file.Name.Name, errNoFileInfo))

				continue
			}

			if !yield(sourceFile{cursor: c, name: handle.Name(), generated: ast.IsGenerated(file)}) {
				return
			}
		}
	}
}
