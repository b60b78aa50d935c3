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
	"cmp"
	"context"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/uselessassign/internal/javascript"
)

// Lint lints files concurrently with at most workers files in flight, 0 means one per CPU.
// Diagnostics are sorted by path and position.
func Lint(ctx context.Context, l *javascript.Linter, files []string, workers int) ([]javascript.Diagnostic, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([][]javascript.Diagnostic, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			src, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			diagnostics, err := l.Lint(ctx, file, src)
			if err != nil {
				return err
			}

			results[i] = diagnostics

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	diagnostics := slices.Concat(results...)
	SortDiagnostics(diagnostics)

	return diagnostics, nil
}

// SortDiagnostics sorts diagnostics by path, line and column.
func SortDiagnostics(diagnostics []javascript.Diagnostic) {
	slices.SortStableFunc(diagnostics, func(a, b javascript.Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
}
