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

// Scoping selects how the engine decides whether an assignment target is local to the
// function containing the return.
type Scoping uint8

const (
	// ScopeStack tracks declared names per function while traversing.
	ScopeStack Scoping = iota

	// AncestorWalk searches the statement lists enclosing the assignment for a declaration,
	// giving up at the first function boundary.
	AncestorWalk
)

// Policy configures the checks of a [Checker].
type Policy struct {
	// Scoping decides whether an assignment target belongs to the current function.
	Scoping Scoping

	// CaseStatements allows switch case statement lists as statement sequences.
	CaseStatements bool

	// PlainAssign restricts assignments to the "=" operator.
	PlainAssign bool

	// Assignment is the message kind for reported assignments.
	Assignment MessageKind
}

var (
	// UselessAssign tracks function scopes on a stack, supports switch cases and
	// ignores compound assignments.
	UselessAssign = Policy{
		Scoping:        ScopeStack,
		CaseStatements: true,
		PlainAssign:    true,
		Assignment:     UselessAssignment,
	}

	// RedundantAssign walks the ancestors of an assignment, only considering block statement lists.
	RedundantAssign = Policy{
		Scoping:        AncestorWalk,
		CaseStatements: false,
		PlainAssign:    false,
		Assignment:     RedundantAssignment,
	}
)
