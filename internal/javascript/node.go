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
	"context"
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrParse is returned when the parser produces no tree.
var ErrParse = errors.New("parse failed")

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line, Column int
}

// Node is a named syntax node.
type Node struct {
	// Kind is the tree-sitter node kind, like "return_statement".
	Kind string

	// Field is the field name of the node in its parent, if any.
	Field string

	// Text is the source text of leaf nodes.
	Text string

	// Operator is the operator token of assignments and for-in statements.
	Operator string

	// Keyword is the declaration keyword of for-in statements, like "const".
	Keyword string

	// Start and End delimit the node in the source.
	Start, End Position

	// Error is set for error and missing nodes.
	Error bool

	parent   *Node
	children []*Node
}

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the named child nodes in source order.
func (n *Node) Children() []*Node { return n.children }

// Child returns the first child with the given field name.
func (n *Node) Child(field string) *Node {
	for _, c := range n.children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// FirstError returns the first error node in document order.
func (n *Node) FirstError() (*Node, bool) {
	if n.Error {
		return n, true
	}

	for _, c := range n.children {
		if e, ok := c.FirstError(); ok {
			return e, true
		}
	}

	return nil, false
}

// Parse parses src in the given dialect and returns the mirrored program node.
func Parse(ctx context.Context, dialect Dialect, src []byte) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if dialect >= numDialects {
		return nil, fmt.Errorf("%w: unknown dialect %d", ErrParse, dialect)
	}

	ps, err := pools()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	pool := ps[dialect]

	sp := pool.get()
	defer pool.put(sp)

	tree := sp.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: no %s tree", ErrParse, dialect)
	}
	defer tree.Close()

	root := tree.RootNode()

	cur := root.Walk()
	defer cur.Close()

	b := builder{src: src}

	return b.node(cur, nil), nil
}

type builder struct {
	src []byte
}

// node mirrors the node under the cursor and its named descendants.
// The cursor is back on the node when node returns.
func (b *builder) node(cur *sitter.TreeCursor, parent *Node) *Node {
	sn := cur.Node()

	n := &Node{
		Kind:   sn.Kind(),
		Field:  cur.FieldName(),
		Start:  position(sn.StartPosition()),
		End:    position(sn.EndPosition()),
		Error:  sn.IsError() || sn.IsMissing(),
		parent: parent,
	}

	if sn.NamedChildCount() == 0 {
		n.Text = sn.Utf8Text(b.src)
	}

	if !cur.GotoFirstChild() {
		return n
	}

	for {
		child := cur.Node()

		switch {
		case child.IsExtra():
			// comments

		case !child.IsNamed():
			if child.IsMissing() {
				n.Error = true
			}

			switch cur.FieldName() {
			case "operator":
				n.Operator = child.Kind()

			case "kind":
				n.Keyword = child.Kind()
			}

		default:
			n.children = append(n.children, b.node(cur, n))
		}

		if !cur.GotoNextSibling() {
			break
		}
	}

	cur.GotoParent()

	return n
}

func position(p sitter.Point) Position {
	return Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
