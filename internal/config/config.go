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

package config

// CheckFlags represents specific checks.
type CheckFlags uint8

const (
	// DeclarationCheck enables reporting of variables that are declared only to be returned
	// by the next statement.
	DeclarationCheck CheckFlags = 1 << iota

	// AssignmentCheck enables reporting of assignments to a variable that is returned by the next statement.
	AssignmentCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[CheckFlags]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return NewBitMask(DeclarationCheck | AssignmentCheck)
}

// BehaviorFlags represents configuration options for the analyzers.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota
)

// Behavior is the set of enabled behavior options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the behavior options enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}
