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

package engine

// Kind classifies host syntax nodes.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	// KindOther is any node not relevant to the engine.
	KindOther Kind = iota

	// KindProgram is the root of a tree. It opens the outermost scope.
	KindProgram

	// KindFunction is a function-like node: declaration, expression, literal, arrow or method.
	KindFunction

	// KindBlock is a statement block with a statement list.
	KindBlock

	// KindCase is a switch or select case with a statement list.
	KindCase

	// KindConditional is a statement holding another statement without a list, like the branch
	// of an if statement without braces.
	KindConditional

	// KindReturn is a return statement.
	KindReturn

	// KindDeclaration is a variable declaration statement.
	KindDeclaration

	// KindAssignment is an assignment statement.
	KindAssignment

	// KindBinding declares variables without being a declaration statement, like the head of
	// a range loop.
	KindBinding
)

// Declarator is a single declared entry of a declaration statement.
type Declarator[N comparable] struct {
	// Name is the declared name, empty when the entry is not a plain identifier.
	Name string

	// Node is the declarator, used for reporting.
	Node N
}

// Assignment describes the assignment of an assignment statement.
type Assignment[N comparable] struct {
	// Operator is the assignment operator, "=" for plain assignments.
	Operator string

	// Target is the assigned name, empty when the left-hand side is not a plain identifier.
	Target string

	// Node is the assignment target, used for reporting.
	Node N
}

// Tree is a syntax tree as seen by the engine.
//
// Implementations must tolerate partial trees: accessors return zero values or false for nodes
// that do not have the requested shape.
type Tree[N comparable] interface {
	// Kind classifies a node.
	Kind(n N) Kind

	// Parent returns the syntactic parent of n, false for the root.
	Parent(n N) (N, bool)

	// Statements returns the statement list of a program, block or case.
	Statements(n N) ([]N, bool)

	// ReturnedName returns the name of the identifier returned by a return statement.
	// It reports false for returns without a result or with a result that is not a plain
	// identifier.
	ReturnedName(n N) (string, bool)

	// Declarators lists the entries of a declaration statement in source order.
	Declarators(n N) []Declarator[N]

	// Assignment describes an assignment statement.
	Assignment(n N) (Assignment[N], bool)

	// DeclaredNames returns the names n declares directly: parameters of function-like nodes,
	// declared names of declaration statements.
	DeclaredNames(n N) []string
}
