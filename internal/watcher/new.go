package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/vttmd/internal/logger"
)

// New creates a Watcher over inputDir. Detected files are handled strictly
// one at a time; conversion output depends on per-file state, so there is
// no concurrent handling.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(inputDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  w,
	}, nil
}
