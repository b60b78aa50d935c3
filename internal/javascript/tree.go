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

import "fillmore-labs.com/uselessassign/internal/engine"

// Tree implements [engine.Tree] for mirrored tree-sitter nodes.
type Tree struct{}

var _ engine.Tree[*Node] = Tree{}

// Kind classifies a node.
func (Tree) Kind(n *Node) engine.Kind {
	switch n.Kind {
	case "program":
		return engine.KindProgram

	case "function_declaration", "function_expression", "function",
		"generator_function_declaration", "generator_function",
		"arrow_function", "method_definition":
		return engine.KindFunction

	case "statement_block":
		return engine.KindBlock

	case "switch_case", "switch_default":
		return engine.KindCase

	case "for_in_statement":
		if n.Keyword != "" {
			return engine.KindBinding
		}

		return engine.KindConditional

	case "if_statement", "else_clause", "labeled_statement", "with_statement",
		"for_statement", "while_statement", "do_statement":
		return engine.KindConditional

	case "return_statement":
		return engine.KindReturn

	case "variable_declaration", "lexical_declaration":
		return engine.KindDeclaration

	case "expression_statement":
		if assignment(n) != nil {
			return engine.KindAssignment
		}
	}

	return engine.KindOther
}

// Parent returns the parent of n, false for the program.
func (Tree) Parent(n *Node) (*Node, bool) {
	return n.parent, n.parent != nil
}

// Statements returns the statement list of a program, block or switch case.
func (Tree) Statements(n *Node) ([]*Node, bool) {
	switch n.Kind {
	case "program", "statement_block":
		return n.children, true

	case "switch_case", "switch_default":
		var body []*Node

		for _, c := range n.children {
			if c.Field == "body" {
				body = append(body, c)
			}
		}

		return body, true
	}

	return nil, false
}

// ReturnedName returns the name of an identifier returned by a return statement.
func (Tree) ReturnedName(n *Node) (string, bool) {
	if n.Kind != "return_statement" || len(n.children) == 0 {
		return "", false
	}

	arg := unparen(n.children[0])
	if arg.Kind != "identifier" {
		return "", false
	}

	return arg.Text, true
}

// Declarators lists the variable declarators of a declaration.
func (Tree) Declarators(n *Node) []engine.Declarator[*Node] {
	var declarators []engine.Declarator[*Node]

	for _, c := range n.children {
		if c.Kind != "variable_declarator" {
			continue
		}

		var name string
		if id := c.Child("name"); id != nil && id.Kind == "identifier" {
			name = id.Text
		}

		declarators = append(declarators, engine.Declarator[*Node]{Name: name, Node: c})
	}

	return declarators
}

// Assignment describes the assignment of an expression statement.
func (Tree) Assignment(n *Node) (engine.Assignment[*Node], bool) {
	expr := assignment(n)
	if expr == nil {
		return engine.Assignment[*Node]{}, false
	}

	left := expr.Child("left")
	if left == nil {
		return engine.Assignment[*Node]{}, false
	}

	assign := engine.Assignment[*Node]{Operator: expr.Operator, Node: left}
	if expr.Kind == "assignment_expression" {
		assign.Operator = "="
	}

	if id := unparen(left); id.Kind == "identifier" {
		assign.Target = id.Text
	}

	return assign, true
}

// DeclaredNames returns the names n declares: the name and parameters of functions,
// class names, bindings of declarations and for-in heads.
func (Tree) DeclaredNames(n *Node) []string {
	var names []string

	switch n.Kind {
	case "function_declaration", "function_expression", "function",
		"generator_function_declaration", "generator_function":
		if name := n.Child("name"); name != nil {
			names = append(names, name.Text)
		}

		names = bindingNames(names, n.Child("parameters"))

	case "arrow_function":
		names = bindingNames(names, n.Child("parameter"))
		names = bindingNames(names, n.Child("parameters"))

	case "method_definition":
		names = bindingNames(names, n.Child("parameters"))

	case "class_declaration", "abstract_class_declaration":
		if name := n.Child("name"); name != nil {
			names = append(names, name.Text)
		}

	case "variable_declaration", "lexical_declaration":
		for _, c := range n.children {
			if c.Kind == "variable_declarator" {
				names = bindingNames(names, c.Child("name"))
			}
		}

	case "for_in_statement":
		if n.Keyword != "" {
			names = bindingNames(names, n.Child("left"))
		}
	}

	return names
}

// assignment returns the assignment expression of an expression statement.
func assignment(n *Node) *Node {
	if n.Kind != "expression_statement" || len(n.children) == 0 {
		return nil
	}

	switch expr := unparen(n.children[0]); expr.Kind {
	case "assignment_expression", "augmented_assignment_expression":
		return expr
	}

	return nil
}

// unparen strips enclosing parentheses.
func unparen(n *Node) *Node {
	for n.Kind == "parenthesized_expression" && len(n.children) == 1 {
		n = n.children[0]
	}

	return n
}
