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

// Package run drives the detection engine over the files of an analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/uselessassign/internal/config"
	"fillmore-labs.com/uselessassign/internal/engine"
	"fillmore-labs.com/uselessassign/internal/gosyntax"
	"fillmore-labs.com/uselessassign/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the uselessassign analyzer on all files of the pass.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("uselessassign: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Checks.None() {
		return nil, nil
	}

	ctx, task := trace.NewTask(context.Background(), "UselessAssign")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	policy := r.Policy.Engine()
	reporter := report.To(p)

	for file := range sourceFiles(p, in) {
		if file.generated && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		if err := r.checkFile(ctx, file.cursor, policy, reporter); err != nil {
			report.InternalError(p, file.cursor.Node(), fmt.Errorf("file %s: %w", file.name, err))
		}
	}

	return nil, nil
}

// checkFile traverses a single file with a fresh checker.
func (r *Options) checkFile(ctx context.Context, f inspector.Cursor, policy engine.Policy, reporter engine.Reporter[inspector.Cursor]) error {
	defer trace.StartRegion(ctx, "CheckFile").End()

	checker := engine.New(gosyntax.Tree{}, policy, r.Checks, reporter)
	gosyntax.Walk(f, checker)

	return checker.Done()
}
