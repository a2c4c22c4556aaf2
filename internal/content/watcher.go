package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"howitworks/pkg/logging"
)

// Watcher reloads a Store whenever its content file changes on disk.
type Watcher struct {
	store *Store
	fsw   *fsnotify.Watcher
	done  chan struct{}
}

// Watch starts watching the store's content file. The directory is watched
// rather than the file so editors that replace the file on save are seen.
func Watch(ctx context.Context, store *Store) (*Watcher, error) {
	if store.Path() == "" {
		return nil, errors.New("content store has no file to watch")
	}
	target, err := filepath.Abs(store.Path())
	if err != nil {
		return nil, fmt.Errorf("resolve content path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	w := &Watcher{
		store: store,
		fsw:   fsw,
		done:  make(chan struct{}),
	}
	go w.loop(ctx, target)
	logging.Debug("Content", "Watching %s for changes", target)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context, target string) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			// Editors that save by renaming a temp file over the target
			// produce a Create for it. A Rename of the target itself means it
			// was moved away, so there is nothing to load.
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				// Failures are logged by the store and the old section is kept.
				_ = w.store.Reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Error("Content", err, "File watcher error")
		}
	}
}

// Close stops watching and waits for the watch loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
