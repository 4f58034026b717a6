package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes the drop root for newly created files and, after the quiet
// period, invokes the trigger exactly once for the whole tree. Files that
// exist at startup produce no events; only genuinely new files count.
type Watcher struct {
	root     string
	debounce *Debouncer
	trigger  func()
	fsw      *fsnotify.Watcher
	logger   *zap.SugaredLogger
}

// New creates a watcher over root. trigger runs on the debouncer's timer
// goroutine once per quiet window.
func New(root string, quietPeriod time.Duration, trigger func(), logger *zap.SugaredLogger) *Watcher {
	w := &Watcher{
		root:    root,
		trigger: trigger,
		logger:  logger,
	}
	w.debounce = NewDebouncer(quietPeriod, w.fireTrigger)
	return w
}

// Start begins watching root and all its current subdirectories. Event
// handling runs on a background goroutine until Close is called.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	w.fsw = fsw

	// fsnotify is not recursive: watch the root and every existing subfolder.
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return fmt.Errorf("watch drop root %s: %w", w.root, err)
	}

	go w.loop()
	w.logger.Infow("watching drop root", "path", w.root)
	return nil
}

// Close stops event handling and cancels any pending quiet-period timer.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			w.handleCreate(event.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Errorw("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleCreate(path string) {
	w.logger.Infow("file added", "path", path)

	// New dated folders must be watched so the files dropped into them are
	// seen too. Files created before the watch lands are covered anyway: the
	// triggered pass rescans the whole tree.
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if err := w.fsw.Add(path); err != nil {
			w.logger.Errorw("failed to watch new folder", "path", path, "error", err)
		}
	}

	w.debounce.Touch()
}

func (w *Watcher) fireTrigger() {
	w.logger.Infow("quiet period elapsed, starting import pass")
	w.trigger()
}
