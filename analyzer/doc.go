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

// Package analyzer implements the uselessassign static analysis pass.
//
// # Overview
//
// uselessassign detects Go variables that are declared or assigned on the statement
// immediately before they are returned:
//
//	func parse(s string) (int, error) {
//	    n := len(s)  // Redundant variable.
//	    return n
//	}
//
//	func next(i int) int {
//	    var r int
//	    step()
//	    r = i + 1  // Useless assignment.
//	    return r
//	}
//
// Assignments are only reported when the variable belongs to the function containing the
// return statement. Writes to variables of an enclosing function or the package are visible
// outside and stay unreported.
//
// # Policies
//
// The "useless" policy (default) tracks the names declared in each function, considers
// statements of switch and select cases and only reports plain "=" assignments.
//
// The "redundant" policy searches the statement lists enclosing an assignment for a
// declaration of the variable, stopping at the first function literal or declaration. It
// ignores case clauses, does not consult parameters and also reports compound assignments
// like "+=".
//
// # Flags
//
//	-policy=useless|redundant  select the policy
//	-declarations=false        disable reporting of redundant declarations
//	-assignments=false         disable reporting of assignments
//	-generated                 also check generated files
package analyzer
