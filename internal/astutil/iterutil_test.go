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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"testing"

	. "fillmore-labs.com/uselessassign/internal/astutil"
)

func TestAllNames(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(a, _ int, b string) (c error) {
	var d, _, e = 1, 2, 3
	const g = 4
	h, _ := 5, 6
	for i, j := range "" {
	}
	return nil
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	fn := f.Decls[0].(*ast.FuncDecl)
	stmts := fn.Body.List

	tests := [...]struct {
		name string
		got  []string
		want []string
	}{
		{"fields", slices.Collect(AllFieldNames(fn.Recv, fn.Type.Params, fn.Type.Results)), []string{"a", "b", "c"}},
		{"var", slices.Collect(AllDeclaredNames(stmts[0].(*ast.DeclStmt))), []string{"d", "e"}},
		{"const", slices.Collect(AllDeclaredNames(stmts[1].(*ast.DeclStmt))), []string{"g"}},
		{"define", slices.Collect(AllAssignedNames(stmts[2].(*ast.AssignStmt))), []string{"h"}},
		{"range", slices.Collect(AllRangeNames(stmts[3].(*ast.RangeStmt))), []string{"i", "j"}},
	}

	for _, tt := range tests {
		if !slices.Equal(tt.got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
