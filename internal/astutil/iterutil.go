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

// Package astutil enumerates the names bound by Go declarations.
package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// AllAssignedNames yields all variable names declared by a short variable declaration.
func AllAssignedNames(stmt *ast.AssignStmt) iter.Seq[string] {
	if stmt.Tok != token.DEFINE {
		return func(func(string) bool) {}
	}

	return allNames(stmt.Lhs)
}

// AllDeclaredNames yields all variable and constant names declared by a declaration statement.
func AllDeclaredNames(stmt *ast.DeclStmt) iter.Seq[string] {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR && decl.Tok != token.CONST {
		return func(func(string) bool) {}
	}

	return func(yield func(string) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, id := range vspec.Names {
				if id.Name == "_" {
					continue // blank identifier
				}

				if !yield(id.Name) {
					return
				}
			}
		}
	}
}

// AllRangeNames yields the key and value names declared by a range statement.
func AllRangeNames(stmt *ast.RangeStmt) iter.Seq[string] {
	if stmt.Tok != token.DEFINE {
		return func(func(string) bool) {}
	}

	return allNames([]ast.Expr{stmt.Key, stmt.Value})
}

// AllFieldNames yields all parameter names of the given field lists.
func AllFieldNames(lists ...*ast.FieldList) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, list := range lists {
			if list == nil {
				continue
			}

			for _, field := range list.List {
				for _, id := range field.Names {
					if id.Name == "_" {
						continue // blank identifier
					}

					if !yield(id.Name) {
						return
					}
				}
			}
		}
	}
}

func allNames(exprs []ast.Expr) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, expr := range exprs {
			id, ok := expr.(*ast.Ident)
			if !ok || id.Name == "_" {
				continue // blank identifier
			}

			if !yield(id.Name) {
				return
			}
		}
	}
}
