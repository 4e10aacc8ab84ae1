package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the write/rename burst of one atomic save
const DefaultDebounce = 150 * time.Millisecond

// FileWatcher reports changes to a single file.
// It watches the parent directory so atomic rename-into-place is seen.
type FileWatcher struct {
	path     string
	name     string
	debounce time.Duration
	log      *zap.Logger

	fsWatcher *fsnotify.Watcher
	changes   chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a watcher for path. The parent directory is created if needed.
func New(path string, debounce time.Duration, log *zap.Logger) (*FileWatcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &FileWatcher{
		path:      path,
		name:      filepath.Base(path),
		debounce:  debounce,
		log:       log.With(zap.String("component", "watcher")),
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
	}, nil
}

// Changes delivers one value per settled burst of changes. Pending
// notifications coalesce while nobody is reading.
func (w *FileWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins delivering events until ctx is done or Stop is called
func (w *FileWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}

	w.running = true
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.handleEvents(ctx)

	w.log.Debug("watching contacts file", zap.String("path", w.path))
}

func (w *FileWatcher) handleEvents(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.log.Debug("file event", zap.String("op", event.Op.String()))
				w.schedule()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *FileWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *FileWatcher) flush() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// Stop ends watching and releases the OS watcher
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	running := w.running
	w.running = false
	if running {
		w.cancel()
	}
	done := w.done
	w.mu.Unlock()

	err := w.fsWatcher.Close()
	if running {
		<-done
	}
	return err
}
