package content

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch observes the content directory (recursively) and invokes onChange
// after edits settle. Events are debounced so a multi-file save triggers a
// single reload. Returns once the watcher is running; stops when ctx ends.
func Watch(ctx context.Context, dir string, log *zap.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := addRecursive(w, dir); err != nil {
		w.Close()
		return err
	}

	go func() {
		defer w.Close()
		var (
			debounce *time.Timer
			fire     = make(chan struct{}, 1)
		)
		schedule := func() {
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(250*time.Millisecond, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		}
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = w.Add(ev.Name)
					}
				}
				if ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
					schedule()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("content: watcher error", zap.Error(err))
			case <-fire:
				log.Info("content: change detected, reloading", zap.String("dir", dir))
				onChange()
			}
		}
	}()
	return nil
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
