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

package gosyntax

import (
	"go/ast"
	"go/token"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/uselessassign/internal/astutil"
	"fillmore-labs.com/uselessassign/internal/engine"
)

// Tree implements [engine.Tree] for Go syntax.
type Tree struct{}

var _ engine.Tree[inspector.Cursor] = Tree{}

// Kind classifies a node.
func (Tree) Kind(c inspector.Cursor) engine.Kind {
	switch n := c.Node().(type) {
	case *ast.File:
		return engine.KindProgram

	case *ast.FuncDecl, *ast.FuncLit:
		return engine.KindFunction

	case *ast.BlockStmt:
		return engine.KindBlock

	case *ast.CaseClause, *ast.CommClause:
		return engine.KindCase

	case *ast.LabeledStmt:
		return engine.KindConditional

	case *ast.ReturnStmt:
		return engine.KindReturn

	case *ast.DeclStmt:
		if valueDecl(n) != nil {
			return engine.KindDeclaration
		}

	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			return engine.KindDeclaration
		}

		return engine.KindAssignment

	case *ast.RangeStmt:
		if n.Tok == token.DEFINE {
			return engine.KindBinding
		}
	}

	return engine.KindOther
}

// Parent returns the syntactic parent of c, false for the file.
func (Tree) Parent(c inspector.Cursor) (inspector.Cursor, bool) {
	if _, ok := c.Node().(*ast.File); ok || c.Node() == nil {
		return c, false
	}

	p := c.Parent()

	return p, p.Node() != nil
}

// Statements returns the statement list of a block or case clause.
func (Tree) Statements(c inspector.Cursor) ([]inspector.Cursor, bool) {
	var (
		kind edge.Kind
		n    int
	)

	switch s := c.Node().(type) {
	case *ast.BlockStmt:
		kind, n = edge.BlockStmt_List, len(s.List)

	case *ast.CaseClause:
		kind, n = edge.CaseClause_Body, len(s.Body)

	case *ast.CommClause:
		kind, n = edge.CommClause_Body, len(s.Body)

	default:
		return nil, false
	}

	stmts := make([]inspector.Cursor, n)
	for i := range n {
		stmts[i] = c.ChildAt(kind, i)
	}

	return stmts, true
}

// ReturnedName returns the name of a single identifier returned by a return statement.
func (Tree) ReturnedName(c inspector.Cursor) (string, bool) {
	ret, ok := c.Node().(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return "", false
	}

	id, ok := ast.Unparen(ret.Results[0]).(*ast.Ident)
	if !ok || id.Name == "_" {
		return "", false
	}

	return id.Name, true
}

// Declarators lists the declared identifiers of a declaration statement.
func (Tree) Declarators(c inspector.Cursor) []engine.Declarator[inspector.Cursor] {
	switch n := c.Node().(type) {
	case *ast.DeclStmt:
		decl := valueDecl(n)
		if decl == nil {
			return nil
		}

		var declarators []engine.Declarator[inspector.Cursor]

		gen := c.ChildAt(edge.DeclStmt_Decl, -1)
		for i, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			tuple := len(vspec.Names) > 1 && len(vspec.Values) == 1
			s := gen.ChildAt(edge.GenDecl_Specs, i)

			for j, id := range vspec.Names {
				declarators = append(declarators, engine.Declarator[inspector.Cursor]{
					Name: declaredName(id, tuple),
					Node: s.ChildAt(edge.ValueSpec_Names, j),
				})
			}
		}

		return declarators

	case *ast.AssignStmt:
		if n.Tok != token.DEFINE {
			return nil
		}

		tuple := len(n.Lhs) > 1 && len(n.Rhs) == 1

		declarators := make([]engine.Declarator[inspector.Cursor], 0, len(n.Lhs))
		for i, lhs := range n.Lhs {
			id, _ := lhs.(*ast.Ident)
			declarators = append(declarators, engine.Declarator[inspector.Cursor]{
				Name: declaredName(id, tuple),
				Node: c.ChildAt(edge.AssignStmt_Lhs, i),
			})
		}

		return declarators
	}

	return nil
}

// Assignment describes an assignment statement. Only single identifier targets have a name.
func (Tree) Assignment(c inspector.Cursor) (engine.Assignment[inspector.Cursor], bool) {
	stmt, ok := c.Node().(*ast.AssignStmt)
	if !ok || stmt.Tok == token.DEFINE || len(stmt.Lhs) == 0 {
		return engine.Assignment[inspector.Cursor]{}, false
	}

	assign := engine.Assignment[inspector.Cursor]{
		Operator: stmt.Tok.String(),
		Node:     c.ChildAt(edge.AssignStmt_Lhs, 0),
	}

	if len(stmt.Lhs) == 1 {
		if id, ok := ast.Unparen(stmt.Lhs[0]).(*ast.Ident); ok && id.Name != "_" {
			assign.Target = id.Name
		}
	}

	return assign, true
}

// DeclaredNames returns the names declared directly by c: parameters and named results of
// functions, names of declarations and range bindings.
func (Tree) DeclaredNames(c inspector.Cursor) []string {
	switch n := c.Node().(type) {
	case *ast.FuncDecl:
		return slices.Collect(astutil.AllFieldNames(n.Recv, n.Type.Params, n.Type.Results))

	case *ast.FuncLit:
		return slices.Collect(astutil.AllFieldNames(n.Type.Params, n.Type.Results))

	case *ast.DeclStmt:
		return slices.Collect(astutil.AllDeclaredNames(n))

	case *ast.AssignStmt:
		return slices.Collect(astutil.AllAssignedNames(n))

	case *ast.RangeStmt:
		return slices.Collect(astutil.AllRangeNames(n))
	}

	return nil
}

// valueDecl returns the `var` or `const` declaration of stmt, nil for type declarations.
func valueDecl(stmt *ast.DeclStmt) *ast.GenDecl {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR && decl.Tok != token.CONST {
		return nil
	}

	return decl
}

func declaredName(id *ast.Ident, tuple bool) string {
	if tuple || id == nil || id.Name == "_" {
		return ""
	}

	return id.Name
}
