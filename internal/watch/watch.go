// Package watch re-runs full builds when source roots change on disk or on a
// fixed schedule. There is no incremental mode and no server: every trigger
// is a complete rebuild of the output tree.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"github.com/rondayan42/requiem-wiki/internal/logfields"
)

// BuildFunc runs one full build.
type BuildFunc func(ctx context.Context) error

// Watcher triggers rebuilds from filesystem events and an optional interval.
type Watcher struct {
	roots        []string
	build        BuildFunc
	interval     time.Duration // zero disables the periodic trigger
	debounceTime time.Duration
	watcher      *fsnotify.Watcher
	trigger      chan struct{}
}

// New creates a watcher over the given local source roots.
func New(roots []string, interval time.Duration, build BuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		roots:        roots,
		build:        build,
		interval:     interval,
		debounceTime: 2 * time.Second, // coalesce bursts of snapshot copies
		watcher:      fsw,
		trigger:      make(chan struct{}, 1),
	}, nil
}

// Run builds once immediately, then blocks rebuilding on every trigger until
// the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for _, root := range w.roots {
		if err := w.addRecursive(root); err != nil {
			return fmt.Errorf("failed to watch source root %s: %w", root, err)
		}
		slog.Info("Watching source root", logfields.SourceRoot(root))
	}

	var scheduler gocron.Scheduler
	if w.interval > 0 {
		s, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		if _, err := s.NewJob(
			gocron.DurationJob(w.interval),
			gocron.NewTask(w.requestBuild),
			gocron.WithName("periodic-rebuild"),
		); err != nil {
			return fmt.Errorf("failed to schedule periodic rebuild: %w", err)
		}
		s.Start()
		scheduler = s
		defer func() { _ = scheduler.Shutdown() }()
		slog.Info("Periodic rebuilds enabled", slog.Duration("interval", w.interval))
	}

	go w.eventLoop(ctx)

	if err := w.build(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.trigger:
			if err := w.build(ctx); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

// requestBuild queues a rebuild, dropping the request if one is already queued.
func (w *Watcher) requestBuild() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// eventLoop debounces filesystem events into rebuild requests.
func (w *Watcher) eventLoop(ctx context.Context) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories must be watched as they appear.
			if ev.Op&fsnotify.Create != 0 {
				_ = w.addRecursive(ev.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, w.requestBuild)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// addRecursive watches path and every directory below it. fsnotify watches are
// not recursive on their own.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		return w.watcher.Add(p)
	})
}
