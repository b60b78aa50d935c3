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

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fillmore-labs.com/uselessassign/internal/config"
	"fillmore-labs.com/uselessassign/internal/engine"
)

// ErrUnsupported is returned for files without a supported extension.
var ErrUnsupported = errors.New("unsupported file type")

// Diagnostic is a finding in a source file.
type Diagnostic struct {
	Path      string `json:"path"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

// String formats the diagnostic as "path:line:column: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Line, d.Column, d.Message)
}

// Linter checks JavaScript and TypeScript sources.
//
// A Linter is safe for concurrent use. Every call of [Linter.Lint] uses its own [engine.Checker].
type Linter struct {
	policy engine.Policy
	checks config.Checks
	logger *slog.Logger
}

// NewLinter creates a [Linter]. A nil logger discards log output.
func NewLinter(policy engine.Policy, checks config.Checks, logger *slog.Logger) *Linter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Linter{policy: policy, checks: checks, logger: logger}
}

// Lint checks a single source file. The file name selects the dialect and is used as the
// diagnostic path. Sources with syntax errors are analyzed as far as they were parsed.
func (l *Linter) Lint(ctx context.Context, filename string, src []byte) ([]Diagnostic, error) {
	dialect, ok := DialectFor(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filename)
	}

	root, err := Parse(ctx, dialect, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if e, ok := root.FirstError(); ok {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Syntax error",
			slog.String("path", filename), slog.Int("line", e.Start.Line), slog.Int("column", e.Start.Column))
	}

	var diagnostics []Diagnostic

	report := func(f engine.Finding[*Node]) {
		diagnostics = append(diagnostics, Diagnostic{
			Path:      filename,
			Line:      f.Node.Start.Line,
			Column:    f.Node.Start.Column,
			EndLine:   f.Node.End.Line,
			EndColumn: f.Node.End.Column,
			Kind:      f.Kind.String(),
			Message:   f.Message(),
		})
	}

	checker := engine.New[*Node](Tree{}, l.policy, l.checks, report)
	Walk(root, checker)

	if err := checker.Done(); err != nil {
		return diagnostics, fmt.Errorf("%s: %w", filename, err)
	}

	return diagnostics, nil
}
