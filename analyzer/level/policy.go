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

// Package level defines text-configurable option values of the analyzer.
package level

import (
	"fmt"
	"strings"

	"fillmore-labs.com/uselessassign/internal/engine"
)

// Policy selects the detection variant.
type Policy uint8

const (
	// PolicyUseless tracks the names declared per function and reports "Useless assignment."
	// Only plain assignments qualify, switch cases are considered.
	PolicyUseless Policy = iota

	// PolicyRedundant searches the statement lists enclosing an assignment for a declaration and
	// reports "Redundant assignment." Compound assignments qualify, switch cases are ignored.
	PolicyRedundant
)

// Engine returns the engine policy.
func (o Policy) Engine() engine.Policy {
	if o == PolicyRedundant {
		return engine.RedundantAssign
	}

	return engine.UselessAssign
}

// MarshalText implements [encoding.TextMarshaler].
func (o Policy) MarshalText() ([]byte, error) {
	switch o {
	case PolicyUseless:
		return []byte("useless"), nil

	case PolicyRedundant:
		return []byte("redundant"), nil

	default:
		return nil, fmt.Errorf("unknown policy %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "useless", "scope":
		*o = PolicyUseless

	case "redundant", "ancestor":
		*o = PolicyRedundant

	default:
		return fmt.Errorf("unknown policy %q", string(text))
	}

	return nil
}
