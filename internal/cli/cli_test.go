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

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/uselessassign/internal/cli"
	"fillmore-labs.com/uselessassign/internal/javascript"
	"fillmore-labs.com/uselessassign/internal/settings"
)

const (
	redundantSrc = "function f() {\n  let value = compute();\n  return value;\n}\n"
	cleanSrc     = "function f() {\n  return compute();\n}\n"
)

func writeFiles(tb testing.TB, dir string, files map[string]string) {
	tb.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.js":                   cleanSrc,
		"b.ts":                   cleanSrc,
		"c.go":                   "package c\n",
		"sub/d.tsx":              cleanSrc,
		"sub/gen/e.mjs":          cleanSrc,
		"node_modules/lib/x.js":  cleanSrc,
		"pkg/node_modules/y.cjs": cleanSrc,
	})

	s := settings.Default()
	s.Files.Exclude = append(s.Files.Exclude, "sub/gen")

	m, err := s.Files.Compile()
	require.NoError(t, err)

	files, err := Discover([]string{dir, filepath.Join(dir, "a.js")}, m)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "b.ts"),
		filepath.Join(dir, "sub", "d.tsx"),
	}
	assert.Equal(t, want, files)
}

func TestDiscoverMissingRoot(t *testing.T) {
	t.Parallel()

	m, err := settings.Default().Files.Compile()
	require.NoError(t, err)

	_, err = Discover([]string{filepath.Join(t.TempDir(), "missing")}, m)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSortDiagnostics(t *testing.T) {
	t.Parallel()

	diagnostics := []javascript.Diagnostic{
		{Path: "b.js", Line: 1, Column: 1},
		{Path: "a.js", Line: 2, Column: 5},
		{Path: "a.js", Line: 2, Column: 3},
		{Path: "a.js", Line: 1, Column: 9},
	}

	SortDiagnostics(diagnostics)

	want := []javascript.Diagnostic{
		{Path: "a.js", Line: 1, Column: 9},
		{Path: "a.js", Line: 2, Column: 3},
		{Path: "a.js", Line: 2, Column: 5},
		{Path: "b.js", Line: 1, Column: 1},
	}
	assert.Equal(t, want, diagnostics)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	diagnostics := []javascript.Diagnostic{{
		Path: "f.js", Line: 2, Column: 7, EndLine: 2, EndColumn: 24,
		Kind: "RedundantVariable", Message: "Redundant variable.",
	}}

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatText, diagnostics))
		assert.Equal(t, "f.js:2:7: Redundant variable.\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, diagnostics))

		var got []javascript.Diagnostic
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, diagnostics, got)
		assert.Contains(t, buf.String(), `"endColumn": 24`)
	})

	t.Run("empty json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, nil))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), diagnostics))
	})
}

func TestLint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.js": redundantSrc,
		"a.ts": redundantSrc + redundantSrc,
		"c.js": cleanSrc,
	})

	files := []string{filepath.Join(dir, "a.ts"), filepath.Join(dir, "b.js"), filepath.Join(dir, "c.js")}
	l := javascript.NewLinter(settings.Default().Policy.Engine(), settings.Default().EnabledChecks(), nil)

	diagnostics, err := Lint(context.Background(), l, files, 2)
	require.NoError(t, err)

	require.Len(t, diagnostics, 3)
	assert.Equal(t, filepath.Join(dir, "a.ts"), diagnostics[0].Path)
	assert.Equal(t, 2, diagnostics[0].Line)
	assert.Equal(t, 6, diagnostics[1].Line)
	assert.Equal(t, filepath.Join(dir, "b.js"), diagnostics[2].Path)

	_, err = Lint(context.Background(), l, []string{filepath.Join(dir, "missing.js")}, 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMainExit(t *testing.T) {
	t.Parallel()

	findings := t.TempDir()
	writeFiles(t, findings, map[string]string{"src/f.js": redundantSrc})

	clean := t.TempDir()
	writeFiles(t, clean, map[string]string{"src/f.js": cleanSrc})

	config := filepath.Join(t.TempDir(), settings.FileName)
	writeFiles(t, filepath.Dir(config), map[string]string{
		settings.FileName: "[checks]\ndeclarations = false\n",
	})

	badConfig := filepath.Join(t.TempDir(), settings.FileName)
	writeFiles(t, filepath.Dir(badConfig), map[string]string{
		settings.FileName: "color = true\n",
	})

	tests := []struct {
		name   string
		args   []string
		want   int
		stdout string
	}{
		{"findings", []string{findings}, ExitFindings, "Redundant variable."},
		{"clean", []string{clean}, ExitOK, ""},
		{"redundant policy", []string{"-policy", "redundant", findings}, ExitFindings, "Redundant variable."},
		{"json", []string{"-format", "json", clean}, ExitOK, "[]"},
		{"config", []string{"-config", config, findings}, ExitOK, ""},
		{"bad config", []string{"-config", badConfig, findings}, ExitError, ""},
		{"missing config", []string{"-config", filepath.Join(clean, "none.toml"), findings}, ExitError, ""},
		{"bad policy", []string{"-policy", "strict", findings}, ExitError, ""},
		{"bad format", []string{"-format", "xml", findings}, ExitError, ""},
		{"bad flag", []string{"-nope"}, ExitError, ""},
		{"missing root", []string{filepath.Join(clean, "missing")}, ExitError, ""},
		{"help", []string{"-h"}, ExitOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			got := Main(context.Background(), tt.args, &stdout, &stderr)

			assert.Equal(t, tt.want, got, "stderr: %s", stderr.String())
			if tt.stdout == "" {
				assert.Empty(t, strings.TrimSpace(strings.TrimPrefix(stdout.String(), "[]")))
			} else {
				assert.Contains(t, stdout.String(), tt.stdout)
			}
		})
	}
}

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.js": cleanSrc})

	m, err := settings.Default().Files.Compile()
	require.NoError(t, err)

	changed := make(chan []string, 10)

	w, err := NewWatcher([]string{dir}, m, 20*time.Millisecond, DiscardLogger, func(_ context.Context, paths []string) {
		changed <- paths
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx) }()

	writeFiles(t, dir, map[string]string{
		"b.js":        redundantSrc,
		"ignored.txt": "text",
	})

	select {
	case paths := <-changed:
		assert.Equal(t, []string{filepath.Join(dir, "b.js")}, paths)

	case <-time.After(5 * time.Second):
		t.Error("Timed out waiting for change")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)

	case <-time.After(5 * time.Second):
		t.Error("Watcher did not stop")
	}
}
