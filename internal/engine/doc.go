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

// Package engine detects variables that are declared or assigned only to be returned by the
// next statement.
//
// The engine is independent of any concrete syntax tree. A host describes its tree through
// [Tree], drives a depth-first traversal and calls [Checker.Enter] and [Checker.Exit] for every
// node in document order. Findings are delivered to a sink as they are discovered.
//
// # Patterns
//
// Redundant declaration:
//
//	x := compute()
//	return x
//
// Useless assignment to a variable of the enclosing function:
//
//	x = compute()
//	return x
//
// Assignments to variables of an outer function or to package level variables are not reported,
// since the write is observable after the return.
//
// # Policies
//
// Two policies decide whether an assignment target belongs to the current function:
// [RedundantAssign] walks the ancestors of the assignment until it finds a statement list
// declaring the variable, [UselessAssign] keeps an explicit stack of per-function scopes.
package engine
