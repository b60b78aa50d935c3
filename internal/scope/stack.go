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

// Package scope tracks the names declared in the function-like nodes enclosing the current
// position of a traversal.
package scope

// Frame holds the names declared directly within one function-like node, including its parameters.
type Frame map[string]struct{}

// Stack is a stack of [Frame]s, one per open function-like node.
//
// A Stack belongs to a single traversal and is not safe for concurrent use.
type Stack struct {
	frames []Frame
}

// Enter opens a new frame containing names.
func (s *Stack) Enter(names []string) {
	frame := make(Frame, len(names))
	for _, name := range names {
		frame[name] = struct{}{}
	}

	s.frames = append(s.frames, frame)
}

// Record adds names to the innermost frame. It reports false when no frame is open.
func (s *Stack) Record(names []string) bool {
	if len(s.frames) == 0 {
		return false
	}

	frame := s.frames[len(s.frames)-1]
	for _, name := range names {
		frame[name] = struct{}{}
	}

	return true
}

// Exit closes the innermost frame. It reports false when no frame is open.
func (s *Stack) Exit() bool {
	if len(s.frames) == 0 {
		return false
	}

	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]

	return true
}

// Declared reports whether name is declared in the innermost frame.
func (s *Stack) Declared(name string) bool {
	if len(s.frames) == 0 {
		return false
	}

	_, ok := s.frames[len(s.frames)-1][name]

	return ok
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}
