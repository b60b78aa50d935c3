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

package config_test

import (
	"testing"

	. "fillmore-labs.com/uselessassign/internal/config"
)

func TestChecks(t *testing.T) {
	t.Parallel()

	checks := DefaultChecks()
	if !checks.Enabled(DeclarationCheck) || !checks.Enabled(AssignmentCheck) {
		t.Fatalf("Default checks should enable all checks")
	}

	checks.Set(DeclarationCheck, false)
	if checks.Enabled(DeclarationCheck) {
		t.Errorf("DeclarationCheck still enabled after Set(false)")
	}

	if !checks.Enabled(AssignmentCheck) {
		t.Errorf("AssignmentCheck disabled by unrelated Set")
	}

	checks.Set(AssignmentCheck, false)
	if !checks.None() {
		t.Errorf("Expected no enabled checks")
	}
}

func TestBehavior(t *testing.T) {
	t.Parallel()

	behavior := DefaultBehavior()
	if behavior.Enabled(IncludeGenerated) {
		t.Errorf("Generated files should be excluded by default")
	}

	behavior.Set(IncludeGenerated, true)
	if !behavior.Enabled(IncludeGenerated) {
		t.Errorf("IncludeGenerated not enabled")
	}
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	var zero BitMask[CheckFlags]
	if !zero.None() {
		t.Errorf("Zero value has enabled flags")
	}

	mask := NewBitMask(DeclarationCheck, DeclarationCheck)
	if !mask.Enabled(DeclarationCheck) || mask.Enabled(AssignmentCheck) {
		t.Errorf("Got %+v, want only DeclarationCheck", mask)
	}

	if !mask.Enabled(DeclarationCheck | AssignmentCheck) {
		t.Errorf("Combined flag should match any enabled bit")
	}
}
