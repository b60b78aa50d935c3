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

// Package javascript applies the detection engine to JavaScript and TypeScript sources.
//
// Sources are parsed with tree-sitter. The parse tree is mirrored into a tree of [Node]s
// holding only named nodes without comments, linked to their parents, so the engine can
// address nodes by pointer after the tree-sitter tree is released.
package javascript
