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

package engine_test

import . "fillmore-labs.com/uselessassign/internal/engine"

// node is a minimal syntax tree for engine tests.
type node struct {
	kind     Kind
	label    string
	parent   *node
	children []*node
	names    []string
	decls    []*node
	ret      string
	op       string
	target   *node
}

func link(parent *node, children ...*node) *node {
	for _, child := range children {
		child.parent = parent
	}

	parent.children = children

	return parent
}

func program(stmts ...*node) *node { return link(&node{kind: KindProgram, label: "program"}, stmts...) }

func block(stmts ...*node) *node { return link(&node{kind: KindBlock, label: "block"}, stmts...) }

func switchCase(stmts ...*node) *node { return link(&node{kind: KindCase, label: "case"}, stmts...) }

// function creates a function-like node with the given parameters and body.
func function(params []string, stmts ...*node) *node {
	return link(&node{kind: KindFunction, label: "function", names: params}, block(stmts...))
}

// loop creates a loop binding names for its body.
func loop(names []string, stmts ...*node) *node {
	return link(&node{kind: KindBinding, label: "for", names: names}, block(stmts...))
}

// conditional creates a statement holding stmt without a statement list.
func conditional(stmt *node) *node { return link(&node{kind: KindConditional, label: "if"}, stmt) }

func call(name string) *node { return &node{kind: KindOther, label: name + "()"} }

func returns(name string) *node { return &node{kind: KindReturn, label: "return " + name, ret: name} }

func declare(names ...string) *node {
	n := &node{kind: KindDeclaration, label: "var", names: names}
	for _, name := range names {
		n.decls = append(n.decls, &node{kind: KindOther, label: name, parent: n})
	}

	return n
}

func assign(name, op string) *node {
	n := &node{kind: KindAssignment, label: name + " " + op, op: op}
	n.target = &node{kind: KindOther, label: name, parent: n}

	return n
}

type fakeTree struct{}

var _ Tree[*node] = fakeTree{}

func (fakeTree) Kind(n *node) Kind {
	if n == nil {
		return KindOther
	}

	return n.kind
}

func (fakeTree) Parent(n *node) (*node, bool) {
	if n == nil || n.parent == nil {
		return nil, false
	}

	return n.parent, true
}

func (fakeTree) Statements(n *node) ([]*node, bool) {
	switch n.kind {
	case KindProgram, KindBlock, KindCase:
		return n.children, true

	default:
		return nil, false
	}
}

func (fakeTree) ReturnedName(n *node) (string, bool) {
	return n.ret, n.kind == KindReturn && n.ret != ""
}

func (fakeTree) Declarators(n *node) []Declarator[*node] {
	if n.kind != KindDeclaration {
		return nil
	}

	declarators := make([]Declarator[*node], 0, len(n.decls))
	for _, d := range n.decls {
		declarators = append(declarators, Declarator[*node]{Name: d.label, Node: d})
	}

	return declarators
}

func (fakeTree) Assignment(n *node) (Assignment[*node], bool) {
	if n.kind != KindAssignment || n.target == nil {
		return Assignment[*node]{}, false
	}

	return Assignment[*node]{Operator: n.op, Target: n.target.label, Node: n.target}, true
}

func (fakeTree) DeclaredNames(n *node) []string {
	switch n.kind {
	case KindDeclaration, KindFunction, KindBinding:
		return n.names

	default:
		return nil
	}
}

// walk drives a depth-first traversal in document order.
func walk(c *Checker[*node], n *node) {
	c.Enter(n)

	for _, child := range n.children {
		walk(c, child)
	}

	c.Exit(n)
}
