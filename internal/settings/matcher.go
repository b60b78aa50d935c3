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

package settings

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Matcher decides which paths are linted.
type Matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

// Compile compiles the include and exclude patterns.
func (f Files) Compile() (*Matcher, error) {
	include, err := compileAll(f.Include)
	if err != nil {
		return nil, err
	}

	exclude, err := compileAll(f.Exclude)
	if err != nil {
		return nil, err
	}

	return &Matcher{include: include, exclude: exclude}, nil
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %w", ErrInvalid, pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// Excluded reports whether a relative slash separated path is excluded.
func (m *Matcher) Excluded(rel string) bool {
	return matchAny(m.exclude, rel)
}

// Included reports whether a relative slash separated file path is linted.
func (m *Matcher) Included(rel string) bool {
	if m.Excluded(rel) {
		return false
	}

	return len(m.include) == 0 || matchAny(m.include, rel)
}

func matchAny(globs []glob.Glob, s string) bool {
	for _, g := range globs {
		if g.Match(s) {
			return true
		}
	}

	return false
}
