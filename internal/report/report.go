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

// Package report converts engine findings into analysis diagnostics.
package report

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/uselessassign/internal/engine"
)

// Finding is a finding on Go syntax.
type Finding = engine.Finding[inspector.Cursor]

// Diagnostic constructs the diagnostic for a finding.
//
// The diagnostic spans the reported identifier, the category is the message kind.
func Diagnostic(f Finding) analysis.Diagnostic {
	node := f.Node.Node()

	return analysis.Diagnostic{
		Pos:      node.Pos(),
		End:      node.End(),
		Category: f.Kind.String(),
		Message:  f.Message(),
	}
}

// To returns an [engine.Reporter] reporting findings to the pass.
func To(p *analysis.Pass) engine.Reporter[inspector.Cursor] {
	return func(f Finding) {
		p.Report(Diagnostic(f))
	}
}

// InternalError reports an inconsistency of the analyzer itself.
func InternalError(p *analysis.Pass, rng analysis.Range, err error) {
	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: "internal",
		Message:  "Internal Error: " + err.Error(),
	})
}
