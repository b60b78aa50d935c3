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

package gclplugin

import (
	uselessassign "fillmore-labs.com/uselessassign/analyzer"
	"fillmore-labs.com/uselessassign/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Policy selects the detection policy, "useless" or "redundant".
	Policy *level.Policy `json:"policy,omitzero"`
	// Declarations enables reporting of redundant declarations.
	Declarations *bool `json:"declarations,omitzero"`
	// Assignments enables reporting of assignments.
	Assignments *bool `json:"assignments,omitzero"`
}

// Options converts [Settings] into a list of [uselessassign.Option] for the uselessassign analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []uselessassign.Option {
	var opts []uselessassign.Option

	opts = appendOption(opts, s.Policy, uselessassign.WithPolicy)
	opts = appendOption(opts, s.Declarations, uselessassign.WithDeclarations)
	opts = appendOption(opts, s.Assignments, uselessassign.WithAssignments)

	return opts
}

// appendOption appends a non-nil setting to a [uselessassign.Option] list.
func appendOption[T any](opts []uselessassign.Option, value *T, constructor func(T) uselessassign.Option) []uselessassign.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
