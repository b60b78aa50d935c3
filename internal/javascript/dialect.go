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

package javascript

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Dialect is a source language handled by a dedicated grammar.
type Dialect uint8

const (
	// JavaScript includes JSX.
	JavaScript Dialect = iota

	// TypeScript without JSX.
	TypeScript

	// TSX is TypeScript with JSX.
	TSX

	numDialects
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case JavaScript:
		return "javascript"

	case TypeScript:
		return "typescript"

	case TSX:
		return "tsx"

	default:
		return "unknown"
	}
}

// DialectFor returns the dialect for a file name by extension.
func DialectFor(filename string) (Dialect, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".js", ".mjs", ".cjs", ".jsx":
		return JavaScript, true

	case ".ts", ".mts", ".cts":
		return TypeScript, true

	case ".tsx":
		return TSX, true

	default:
		return 0, false
	}
}

// Extensions returns the supported file extensions.
func Extensions() []string {
	return []string{".cjs", ".cts", ".js", ".jsx", ".mjs", ".mts", ".ts", ".tsx"}
}

func (d Dialect) language() *sitter.Language {
	switch d {
	case TypeScript:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())

	case TSX:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())

	default:
		return sitter.NewLanguage(tree_sitter_javascript.Language())
	}
}
