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

// MessageKind identifies the pattern a [Finding] reports.
type MessageKind uint8

//go:generate go tool stringer -type MessageKind
const (
	// RedundantVariable reports a variable declared only to be returned by the next statement.
	RedundantVariable MessageKind = iota

	// RedundantAssignment reports an assignment found by walking the enclosing statement lists.
	RedundantAssignment

	// UselessAssignment reports an assignment to a variable of the current function scope.
	UselessAssignment
)

// Message returns the human-readable diagnostic text.
func (k MessageKind) Message() string {
	switch k {
	case RedundantVariable:
		return "Redundant variable."

	case RedundantAssignment:
		return "Redundant assignment."

	case UselessAssignment:
		return "Useless assignment."

	default:
		return k.String()
	}
}

// Finding is a single detected pattern.
type Finding[N comparable] struct {
	// Node is the triggering node: the declarator or the assignment target.
	Node N

	// Kind is the detected pattern.
	Kind MessageKind
}

// Message returns the diagnostic text of the finding.
func (f Finding[N]) Message() string {
	return f.Kind.Message()
}

// Reporter receives findings.
type Reporter[N comparable] func(Finding[N])
