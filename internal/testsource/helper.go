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

// Package testsource provides utilities for parsing Go source code in tests.
//
// It handles the boilerplate of parsing source fragments and positioning an
// [inspector.Cursor] on the interesting part of the syntax tree.
package testsource

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// ParseFile parses a complete Go source file and returns a cursor positioned at the *[ast.File].
func ParseFile(tb testing.TB, src string) (*token.FileSet, inspector.Cursor) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Children() {
		return fset, c
	}

	tb.Fatal("Can't find file")

	return nil, root
}

// Parse parses a Go source code fragment.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - inspector.Cursor: A cursor positioned at the *[ast.File].
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, file, body inspector.Cursor) {
	tb.Helper()

	fset, file = ParseFile(tb, wrapSource(src))

	for c := range file.Preorder((*ast.FuncDecl)(nil)) {
		return fset, file, c.ChildAt(edge.FuncDecl_Body, -1)
	}

	tb.Fatal("Can't find function")

	return fset, file, file
}

func wrapSource(src string) string {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return srcFile.String()
}
