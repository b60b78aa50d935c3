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

package report_test

import (
	"errors"
	"go/ast"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/uselessassign/internal/engine"
	. "fillmore-labs.com/uselessassign/internal/report"
	"fillmore-labs.com/uselessassign/internal/testsource"
)

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	_, _, body := testsource.Parse(t, "value := 1\nreturn value")

	var id *ast.Ident

	var f Finding

	for c := range body.Preorder((*ast.Ident)(nil)) {
		id, f = c.Node().(*ast.Ident), Finding{Node: c, Kind: engine.RedundantVariable}

		break
	}

	if id == nil {
		t.Fatal("Can't find identifier")
	}

	d := Diagnostic(f)

	if d.Pos != id.Pos() || d.End != id.End() {
		t.Errorf("Got range %d-%d, want %d-%d", d.Pos, d.End, id.Pos(), id.End())
	}

	if got, want := d.Message, "Redundant variable."; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}

	if got, want := d.Category, "RedundantVariable"; got != want {
		t.Errorf("Got category %q, want %q", got, want)
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	_, file, _ := testsource.Parse(t, "return")

	var got []analysis.Diagnostic

	p := &analysis.Pass{Report: func(d analysis.Diagnostic) { got = append(got, d) }}

	InternalError(p, file.Node(), errors.New("unbalanced scope stack"))

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	if want := "Internal Error: unbalanced scope stack"; got[0].Message != want {
		t.Errorf("Got message %q, want %q", got[0].Message, want)
	}

	if got[0].Category != "internal" || got[0].Pos != file.Node().Pos() {
		t.Errorf("Got %+v, want internal diagnostic at file start", got[0])
	}
}
