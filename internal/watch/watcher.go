package watch

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the work-log file and triggers a pipeline re-run when
// it changes. The parent directory is watched rather than the file itself
// because editors typically replace the file on save.
type Watcher struct {
	path  string
	rerun func() error
}

func New(path string, rerun func() error) *Watcher {
	return &Watcher{path: path, rerun: rerun}
}

func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	target := filepath.Base(w.path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				log.Printf("work log changed (%s), regenerating report", evt.Op)
				if err := w.rerun(); err != nil {
					log.Printf("regeneration failed: %v", err)
				}
			case err := <-watcher.Errors:
				log.Printf("watcher error: %v", err)
			}
		}
	}()
	log.Printf("watching %s for changes", w.path)
	return watcher.Add(filepath.Dir(w.path))
}
