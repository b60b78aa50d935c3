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

// Package cli implements the JavaScript and TypeScript command line tool.
package cli

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"time"

	"fillmore-labs.com/uselessassign/internal/javascript"
	"fillmore-labs.com/uselessassign/internal/settings"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// Main runs the command line tool with the given arguments and returns the exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsuselessassign", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", settings.FileName, "configuration `file`")
		format     = fs.String("format", string(FormatText), "output `format`: text or json")
		policy     = fs.String("policy", "", "detection `policy`: useless or redundant, overrides the configuration")
		watch      = fs.Bool("watch", false, "lint changed files until interrupted")
		debounce   = fs.Duration("debounce", 200*time.Millisecond, "wait time for further changes in watch mode")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)

	fs.Usage = func() {
		_, _ = io.WriteString(fs.Output(), "Usage: jsuselessassign [flags] [path ...]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}

		return ExitError
	}

	logger := newLogger(stderr, *verbose)

	explicit := false
	fs.Visit(func(f *flag.Flag) { explicit = explicit || f.Name == "config" })

	s, err := settings.Load(*configPath, !explicit)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't load configuration", slog.Any("error", err))

		return ExitError
	}

	if *policy != "" {
		if err := s.Policy.UnmarshalText([]byte(*policy)); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "Invalid policy", slog.Any("error", err))

			return ExitError
		}
	}

	r, err := NewRunner(s, Format(*format), stdout, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Invalid options", slog.Any("error", err))

		return ExitError
	}

	roots := fs.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Starting",
		slog.Any("roots", roots), slog.String("config", *configPath), slog.Int("workers", s.Workers))

	if *watch {
		return r.Watch(ctx, roots, *debounce)
	}

	return r.Run(ctx, roots)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Runner lints files and writes the diagnostics.
type Runner struct {
	linter  *javascript.Linter
	matcher *settings.Matcher
	workers int
	format  Format
	out     io.Writer
	logger  *slog.Logger
}

// NewRunner creates a [Runner] from validated settings.
func NewRunner(s settings.Settings, format Format, out io.Writer, logger *slog.Logger) (*Runner, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	matcher, err := s.Files.Compile()
	if err != nil {
		return nil, err
	}

	return &Runner{
		linter:  javascript.NewLinter(s.Policy.Engine(), s.EnabledChecks(), logger),
		matcher: matcher,
		workers: s.Workers,
		format:  format,
		out:     out,
		logger:  logger,
	}, nil
}

// Run lints all files under roots once and returns the exit code.
func (r *Runner) Run(ctx context.Context, roots []string) int {
	files, err := Discover(roots, r.matcher)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "Can't list files", slog.Any("error", err))

		return ExitError
	}

	return r.lint(ctx, files)
}

func (r *Runner) lint(ctx context.Context, files []string) int {
	start := time.Now()

	diagnostics, err := Lint(ctx, r.linter, files, r.workers)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "Lint failed", slog.Any("error", err))

		return ExitError
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "Linted",
		slog.Int("files", len(files)), slog.Int("findings", len(diagnostics)), slog.Duration("elapsed", time.Since(start)))

	if err := Write(r.out, r.format, diagnostics); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "Can't write output", slog.Any("error", err))

		return ExitError
	}

	if len(diagnostics) > 0 {
		return ExitFindings
	}

	return ExitOK
}
