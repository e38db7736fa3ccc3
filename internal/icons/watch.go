// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var watchReadyHook func() // used in tests, called when Watch started watching

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{d: d, f: f}
}

// Do schedules f, cancelling a previously scheduled call that hasn't run yet.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled call.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}

// Watch calls run every time one of files changes, until ctx is canceled.
//
// The directories of the files are watched rather than the files themselves,
// because editors often save by replacing the file.
func Watch(ctx context.Context, files []string, run func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	var mu sync.Mutex // serializes runs
	debouncer := newDebouncer(250*time.Millisecond, func() {
		mu.Lock()
		defer mu.Unlock()
		logger.Info(ctx, "exporting icons")
		if err := run(ctx); err != nil {
			logger.Error(ctx, "export failed", slog.Any("err", err))
		}
	})
	defer debouncer.Stop()

	logger.Info(ctx, "started watching for changes", slog.Any("files", files))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] || !shouldRerun(event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling export",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher error", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			return nil
		}
	}
}

func shouldRerun(path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	// Vim probes directories with this file.
	if base == "4913" {
		return false
	}
	if strings.HasSuffix(base, "~") {
		return false
	}

	// Renames are followed by a create.
	return op&(fsnotify.Create|fsnotify.Write) != 0
}
