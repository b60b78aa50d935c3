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

// Package gosyntax presents Go syntax trees, addressed by [inspector.Cursor], to the
// detection engine.
//
// Mapping of Go constructs:
//   - *ast.File is the program, *ast.FuncDecl and *ast.FuncLit are functions.
//   - *ast.BlockStmt, *ast.CaseClause and *ast.CommClause carry statement lists.
//   - `var` and `const` declaration statements and short variable declarations are
//     declarations. Other assignment statements are assignments.
//   - The key and value of `for k, v := range` are bindings.
//
// Declarators of tuple declarations like `a, b := f()` have no name, since the returned
// value cannot be inlined into the return statement.
package gosyntax
