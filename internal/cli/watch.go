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
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"fillmore-labs.com/uselessassign/internal/settings"
)

// Watcher reports changed source files below a set of roots, coalescing bursts of events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	roots    []string
	matcher  *settings.Matcher
	debounce time.Duration
	logger   *slog.Logger
	onChange func(ctx context.Context, paths []string)

	callbackMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]struct{}
	timer     *time.Timer
}

// NewWatcher creates a [Watcher] for roots. onChange is called with the sorted changed paths,
// never concurrently.
func NewWatcher(roots []string, m *settings.Matcher, debounce time.Duration, logger *slog.Logger,
	onChange func(ctx context.Context, paths []string),
) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		roots:    roots,
		matcher:  m,
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
		pending:  make(map[string]struct{}),
	}

	for _, root := range roots {
		if err := w.watchRoot(root); err != nil {
			_ = fsw.Close()

			return nil, err
		}
	}

	return w, nil
}

func (w *Watcher) watchRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return w.fsw.Add(filepath.Dir(root))
	}

	return w.watchRecursive(root)
}

func (w *Watcher) watchRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if excludedDir(w.roots, w.matcher, path) {
			return filepath.SkipDir
		}

		return w.fsw.Add(path)
	})
}

// Run processes events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			w.handle(ctx, event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.LogAttrs(ctx, slog.LevelWarn, "Watch events lost", slog.Any("error", err))

				continue
			}

			return err
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	w.logger.LogAttrs(ctx, slog.LevelDebug, "Watch event", slog.String("event", event.String()))

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if excludedDir(w.roots, w.matcher, event.Name) {
				return
			}

			if err := w.watchRecursive(event.Name); err != nil {
				w.logger.LogAttrs(ctx, slog.LevelWarn, "Can't watch new directory",
					slog.String("path", event.Name), slog.Any("error", err))

				return
			}

			w.enqueueExisting(ctx, event.Name)

			return
		}
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	if selected(w.roots, w.matcher, event.Name) {
		w.schedule(ctx, event.Name)
	}
}

// enqueueExisting schedules files already present in a newly created directory.
func (w *Watcher) enqueueExisting(ctx context.Context, dir string) {
	files, err := Discover([]string{dir}, w.matcher)
	if err != nil {
		return
	}

	for _, file := range files {
		if selected(w.roots, w.matcher, file) {
			w.schedule(ctx, file)
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending[path] = struct{}{}

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() { w.flush(ctx) })
}

func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	clear(w.pending)
	w.pendingMu.Unlock()

	if len(paths) == 0 || ctx.Err() != nil {
		return
	}

	slices.Sort(paths)

	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()

	w.onChange(ctx, paths)
}

func (w *Watcher) close() {
	w.pendingMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pendingMu.Unlock()

	_ = w.fsw.Close()
}

// Watch lints all files under roots, then lints changed files until ctx is done.
func (r *Runner) Watch(ctx context.Context, roots []string, debounce time.Duration) int {
	if code := r.Run(ctx, roots); code == ExitError {
		return code
	}

	w, err := NewWatcher(roots, r.matcher, debounce, r.logger, func(ctx context.Context, paths []string) {
		files := slices.DeleteFunc(paths, func(path string) bool {
			_, err := os.Stat(path)

			return err != nil
		})
		if len(files) == 0 {
			return
		}

		r.lint(ctx, files)
	})
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "Can't watch files", slog.Any("error", err))

		return ExitError
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "Watching for changes", slog.Any("roots", roots))

	if err := w.Run(ctx); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "Watch failed", slog.Any("error", err))

		return ExitError
	}

	return ExitOK
}
