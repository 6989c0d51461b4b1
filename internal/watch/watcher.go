package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dbenedek/docnav/internal/check"
	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds the snapshot when the nav file or content root changes.
// Filesystem events come in bursts (editors write several times per save),
// so rebuilds are debounced.
type Watcher struct {
	loader   Loader
	store    *Store
	debounce time.Duration
	log      *slog.Logger

	fsw *fsnotify.Watcher
}

func NewWatcher(loader Loader, store *Store, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		loader:   loader,
		store:    store,
		debounce: debounce,
		log:      log,
		fsw:      fsw,
	}

	if loader.NavFile != "" {
		// Watch the directory, not the file: editors replace files on save
		// and the watch would die with the old inode.
		if err := fsw.Add(filepath.Dir(loader.NavFile)); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	if err := w.addTree(loader.ContentRoot); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// addTree registers the root and every subdirectory under it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(p); err != nil {
			w.log.Debug("failed to watch directory", "path", p, "error", err)
		}
		return nil
	})
}

// Run processes events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Create) {
				w.maybeWatchDir(ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-fire:
			timer = nil
			fire = nil
			w.reload()
		}
	}
}

// maybeWatchDir adds a watch when a newly created path is a directory.
func (w *Watcher) maybeWatchDir(p string) {
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.fsw.Add(p); err != nil {
		w.log.Debug("failed to watch new directory", "path", p, "error", err)
	}
}

func (w *Watcher) reload() {
	snap, err := w.loader.Build()
	if err != nil {
		w.log.Error("reload failed, keeping previous snapshot", "error", err)
		return
	}
	w.store.Swap(snap)
	check.Report(w.log, snap.Issues)
	w.log.Info("navigation reloaded",
		"entries", len(snap.Tree),
		"documents", snap.Index.Len(),
		"issues", len(snap.Issues),
	)
}
