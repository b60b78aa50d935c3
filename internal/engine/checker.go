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

import (
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/uselessassign/internal/config"
	"fillmore-labs.com/uselessassign/internal/scope"
)

// ErrUnbalanced is returned by [Checker.Done] when Enter and Exit calls did not match.
var ErrUnbalanced = errors.New("unbalanced traversal")

// Checker detects redundant declarations and useless assignments during one traversal of a [Tree].
//
// A Checker is not safe for concurrent use. Hosts analyzing several trees concurrently
// create one Checker per tree.
type Checker[N comparable] struct {
	tree   Tree[N]
	policy Policy
	checks config.Checks
	report Reporter[N]

	scopes scope.Stack
	depth  int
	err    error
}

// New creates a [Checker] for one traversal of tree.
func New[N comparable](tree Tree[N], policy Policy, checks config.Checks, report Reporter[N]) *Checker[N] {
	return &Checker[N]{
		tree:   tree,
		policy: policy,
		checks: checks,
		report: report,
	}
}

// Enter is called by the host walker when the traversal enters n.
func (c *Checker[N]) Enter(n N) {
	c.depth++

	switch c.tree.Kind(n) {
	case KindProgram, KindFunction:
		if c.policy.Scoping == ScopeStack {
			c.scopes.Enter(c.tree.DeclaredNames(n))
		}

	case KindDeclaration, KindBinding:
		if c.policy.Scoping == ScopeStack && !c.scopes.Record(c.tree.DeclaredNames(n)) {
			c.fail(fmt.Errorf("declaration outside of any scope at depth %d", c.depth))
		}

	case KindReturn:
		c.checkReturn(n)
	}
}

// Exit is called by the host walker when the traversal leaves n.
func (c *Checker[N]) Exit(n N) {
	c.depth--

	switch c.tree.Kind(n) {
	case KindProgram, KindFunction:
		if c.policy.Scoping == ScopeStack && !c.scopes.Exit() {
			c.fail(errors.New("scope exit without matching enter"))
		}
	}
}

// Done finishes the traversal and reports whether Enter and Exit calls were balanced.
func (c *Checker[N]) Done() error {
	if c.err != nil {
		return c.err
	}

	if c.depth != 0 || c.scopes.Depth() != 0 {
		return fmt.Errorf("%w: %d open nodes, %d open scopes", ErrUnbalanced, c.depth, c.scopes.Depth())
	}

	return nil
}

func (c *Checker[N]) fail(err error) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %w", ErrUnbalanced, err)
	}
}

// checkReturn classifies a return statement and its predecessor.
func (c *Checker[N]) checkReturn(ret N) {
	name, ok := c.tree.ReturnedName(ret)
	if !ok {
		return
	}

	prev, ok := Predecessor(c.tree, ret, c.policy.CaseStatements)
	if !ok {
		return
	}

	switch c.tree.Kind(prev) {
	case KindDeclaration:
		if c.checks.Enabled(config.DeclarationCheck) {
			c.checkDeclaration(prev, name)
		}

	case KindAssignment:
		if c.checks.Enabled(config.AssignmentCheck) {
			c.checkAssignment(prev, name)
		}
	}
}

// checkDeclaration reports the last declarator of decl when it declares name.
func (c *Checker[N]) checkDeclaration(decl N, name string) {
	declarators := c.tree.Declarators(decl)
	if len(declarators) == 0 {
		return
	}

	// Only the last declarator is adjacent to the return
	if last := declarators[len(declarators)-1]; last.Name == name {
		c.report(Finding[N]{Node: last.Node, Kind: RedundantVariable})
	}
}

// checkAssignment reports the target of stmt when it assigns name and name is local to the
// current function.
func (c *Checker[N]) checkAssignment(stmt N, name string) {
	assign, ok := c.tree.Assignment(stmt)
	if !ok || assign.Target != name {
		return
	}

	if c.policy.PlainAssign && assign.Operator != "=" {
		return
	}

	var local bool
	switch c.policy.Scoping {
	case ScopeStack:
		local = c.scopes.Declared(name)

	case AncestorWalk:
		local = c.declaredInEnclosingStatements(stmt, name)
	}

	if local {
		c.report(Finding[N]{Node: assign.Node, Kind: c.policy.Assignment})
	}
}

// declaredInEnclosingStatements walks the ancestors of stmt outward. It reports true at the
// first ancestor that binds name itself or whose statement list declares name, and false at
// the first function boundary.
//
// The ascent is bounded by the current traversal depth.
func (c *Checker[N]) declaredInEnclosingStatements(stmt N, name string) bool {
	parent, ok := c.tree.Parent(stmt)
	for level := 0; ok && level < c.depth; level++ {
		switch c.tree.Kind(parent) {
		case KindFunction:
			return false // assignment to an outer scope

		case KindBinding:
			if slices.Contains(c.tree.DeclaredNames(parent), name) {
				return true
			}
		}

		if c.statementsDeclare(parent, name) {
			return true
		}

		parent, ok = c.tree.Parent(parent)
	}

	return false
}

// statementsDeclare reports whether any statement in the statement list of n declares name.
// Loop heads do not declare into the enclosing list.
func (c *Checker[N]) statementsDeclare(n N, name string) bool {
	stmts, ok := statements(c.tree, n, c.policy.CaseStatements)
	if !ok {
		return false
	}

	for _, stmt := range stmts {
		if c.tree.Kind(stmt) == KindBinding {
			continue // loop variables are scoped to the loop
		}

		if slices.Contains(c.tree.DeclaredNames(stmt), name) {
			return true
		}
	}

	return false
}
