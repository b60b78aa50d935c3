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

package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/uselessassign/internal/javascript"
	"fillmore-labs.com/uselessassign/internal/settings"
)

// Discover lists the supported files under roots in sorted order.
//
// Files given directly as roots are always included. Directories are walked, skipping
// excluded directories and files not selected by the matcher.
func Discover(roots []string, m *settings.Matcher) ([]string, error) {
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if _, ok := javascript.DialectFor(root); ok {
				files = append(files, root)
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if rel != "." && m.Excluded(rel) {
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := javascript.DialectFor(path); ok && m.Included(rel) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// relative returns path relative to the first root containing it, in slash form.
func relative(roots []string, path string) (string, bool) {
	for _, root := range roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}

		return filepath.ToSlash(rel), true
	}

	return "", false
}

// selected reports whether path below one of roots is a supported file selected by the matcher.
func selected(roots []string, m *settings.Matcher, path string) bool {
	if _, ok := javascript.DialectFor(path); !ok {
		return false
	}

	rel, ok := relative(roots, path)
	if !ok {
		return false
	}

	return rel == "." || m.Included(rel)
}

// excludedDir reports whether the directory path below one of roots is excluded.
func excludedDir(roots []string, m *settings.Matcher, path string) bool {
	rel, ok := relative(roots, path)

	return ok && rel != "." && m.Excluded(rel)
}
