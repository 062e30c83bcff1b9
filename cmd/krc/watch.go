package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/simonhull/krc"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		initial bool
		settle  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Decode KRC files as they are created or modified",
		Long: "Watch a directory and decode every .krc file that is created or written. " +
			"A file is decoded once it has been quiet for the settle time.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("settle") {
				a.cfg.WatchSettle = settle
			}
			opts, err := a.decodeOptions()
			if err != nil {
				return err
			}

			w := &watcher{
				dir:    args[0],
				logger: a.logger,
				decode: func(path string) (*krc.Document, error) { return krc.Open(path, opts...) },
			}
			w.pending = newDebouncer(a.cfg.WatchSettle, w.handle)
			return w.run(cmd.Context(), initial)
		},
	}

	cmd.Flags().BoolVar(&initial, "initial", false, "Decode the .krc files already in the directory first")
	cmd.Flags().DurationVar(&settle, "settle", 0, "Quiet time before a changed file is decoded (default from KRC_WATCH_SETTLE or 500ms)")

	return cmd
}

// watcher decodes .krc files in one directory as they change.
type watcher struct {
	dir     string
	logger  *slog.Logger
	decode  func(path string) (*krc.Document, error)
	pending *debouncer
}

func (w *watcher) run(ctx context.Context, initial bool) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	defer w.pending.Stop()

	if initial {
		if err := w.initialScan(); err != nil {
			return err
		}
	}
	w.logger.Info("watching for KRC files", slog.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watch stopped", slog.String("dir", w.dir))
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.logger.Debug("watcher event", slog.String("op", event.Op.String()), slog.String("path", event.Name))
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if isKRC(event.Name) {
				w.pending.Trigger(event.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", slog.Any("error", err))
		}
	}
}

func (w *watcher) initialScan() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("initial scan of %s: %w", w.dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() && isKRC(e.Name()) {
			w.handle(filepath.Join(w.dir, e.Name()))
		}
	}
	return nil
}

// handle decodes one file and logs a summary.
func (w *watcher) handle(path string) {
	doc, err := w.decode(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.logger.Debug("file vanished before decode", slog.String("path", path))
			return
		}
		w.logger.Error("decode failed", slog.String("path", path), slog.Any("error", err))
		return
	}
	w.logger.Info("decoded",
		slog.String("path", path),
		slog.String("title", doc.Tags.Title()),
		slog.String("artist", doc.Tags.Artist()),
		slog.Int("lines", len(doc.Lines)),
		slog.Int("translations", len(doc.Translations)),
		slog.Int("warnings", len(doc.Warnings)),
		slog.Duration("duration", doc.Duration()),
	)
}

func isKRC(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".krc")
}

// debouncer runs fn for a key once no Trigger for that key has arrived
// for the settle time.
type debouncer struct {
	settle time.Duration
	fn     func(key string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func newDebouncer(settle time.Duration, fn func(key string)) *debouncer {
	return &debouncer{
		settle:  settle,
		fn:      fn,
		pending: make(map[string]*time.Timer),
	}
}

// Trigger schedules fn(key), resetting any pending run for key.
func (d *debouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.pending[key]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.settle, func() {
		d.mu.Lock()
		if d.pending[key] != t {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()

		d.fn(key)
	})
	d.pending[key] = t
}

// Pending returns the number of scheduled runs.
func (d *debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every pending run.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, t := range d.pending {
		t.Stop()
		delete(d.pending, k)
	}
}
