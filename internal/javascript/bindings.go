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

// bindingNames appends the names bound by a binding pattern or parameter list to names.
func bindingNames(names []string, n *Node) []string {
	if n == nil {
		return names
	}

	switch n.Kind {
	case "identifier", "shorthand_property_identifier_pattern":
		return append(names, n.Text)

	case "assignment_pattern", "object_assignment_pattern":
		return bindingNames(names, n.Child("left"))

	case "pair_pattern":
		return bindingNames(names, n.Child("value"))

	case "required_parameter", "optional_parameter":
		return bindingNames(names, n.Child("pattern"))

	case "rest_pattern", "object_pattern", "array_pattern", "formal_parameters":
		for _, c := range n.children {
			names = bindingNames(names, c)
		}
	}

	return names
}
