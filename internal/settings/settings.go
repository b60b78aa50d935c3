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

// Package settings loads the configuration file of the JavaScript command line tool.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/uselessassign/analyzer/level"
	"fillmore-labs.com/uselessassign/internal/config"
)

// FileName is the default configuration file name.
const FileName = "uselessassign.toml"

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Settings is the configuration of the JavaScript command line tool.
type Settings struct {
	// Policy selects the detection variant.
	Policy level.Policy `toml:"policy"`

	// Checks enables individual checks.
	Checks Checks `toml:"checks"`

	// Files selects the files to lint.
	Files Files `toml:"files"`

	// Workers limits the number of files linted concurrently, 0 uses the number of CPUs.
	Workers int `toml:"workers"`
}

// Checks enables individual checks. Unset values default to enabled.
type Checks struct {
	Declarations *bool `toml:"declarations"`
	Assignments  *bool `toml:"assignments"`
}

// Files holds glob patterns matched against slash separated paths relative to a lint root.
type Files struct {
	// Include restricts linting to matching files. Empty includes all supported files.
	Include []string `toml:"include"`

	// Exclude skips matching files and directories.
	Exclude []string `toml:"exclude"`
}

// Default returns the settings used without a configuration file.
func Default() Settings {
	return Settings{
		Policy: level.PolicyUseless,
		Files: Files{
			Exclude: []string{"node_modules", "**/node_modules", ".git", "**/.git"},
		},
	}
}

// Load reads the configuration file at path over the defaults.
// A missing file yields the defaults when optional is true.
func Load(path string, optional bool) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return s, err
	}

	if err := s.decode(string(data)); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// decode parses TOML data over s and validates the result.
func (s *Settings) decode(data string) error {
	md, err := toml.Decode(data, s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	return s.Validate()
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, s.Workers)
	}

	if _, err := s.Files.Compile(); err != nil {
		return err
	}

	return nil
}

// EnabledChecks returns the enabled checks.
func (s Settings) EnabledChecks() config.Checks {
	checks := config.DefaultChecks()

	if s.Checks.Declarations != nil {
		checks.Set(config.DeclarationCheck, *s.Checks.Declarations)
	}

	if s.Checks.Assignments != nil {
		checks.Set(config.AssignmentCheck, *s.Checks.Assignments)
	}

	return checks
}
