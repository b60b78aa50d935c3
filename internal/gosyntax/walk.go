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

package gosyntax

import "golang.org/x/tools/go/ast/inspector"

// Visitor receives the nodes of a traversal in document order.
type Visitor interface {
	Enter(c inspector.Cursor)
	Exit(c inspector.Cursor)
}

// Walk traverses the subtree rooted at c depth-first, calling Enter before and Exit after the
// children of each node.
func Walk(c inspector.Cursor, v Visitor) {
	v.Enter(c)

	for child := range c.Children() {
		Walk(child, v)
	}

	v.Exit(c)
}
