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

// Predecessor returns the statement immediately preceding stmt in the statement list
// containing it.
//
// Case statement lists are only considered when cases is true. Statements without a
// surrounding list, like the branch of an if statement without braces, have no predecessor.
func Predecessor[N comparable](t Tree[N], stmt N, cases bool) (N, bool) {
	var none N

	parent, ok := t.Parent(stmt)
	if !ok {
		return none, false
	}

	siblings, ok := statements(t, parent, cases)
	if !ok {
		return none, false
	}

	for i := range len(siblings) - 1 {
		if siblings[i+1] == stmt {
			return siblings[i], true
		}
	}

	return none, false
}

// statements returns the statement list of n, honoring the case restriction.
func statements[N comparable](t Tree[N], n N, cases bool) ([]N, bool) {
	switch t.Kind(n) {
	case KindProgram, KindBlock:

	case KindCase:
		if !cases {
			return nil, false
		}

	default:
		return nil, false
	}

	return t.Statements(n)
}
