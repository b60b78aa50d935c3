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
	"encoding/json"
	"fmt"
	"io"

	"fillmore-labs.com/uselessassign/internal/javascript"
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate checks for a known format.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil

	default:
		return fmt.Errorf("unknown output format %q", string(f))
	}
}

// Write writes diagnostics in the given format.
func Write(w io.Writer, format Format, diagnostics []javascript.Diagnostic) error {
	switch format {
	case FormatJSON:
		if diagnostics == nil {
			diagnostics = []javascript.Diagnostic{}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(diagnostics)

	case FormatText:
		for _, d := range diagnostics {
			if _, err := fmt.Fprintln(w, d); err != nil {
				return err
			}
		}

		return nil

	default:
		return format.Validate()
	}
}
