package config

import (
	"io"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow absorbs the multi-event bursts editors produce for a
// single save (write, then chmod, then rename-back) before treating a
// write as settled.
const debounceWindow = 100 * time.Millisecond

// Watch re-reads path whenever it's written and swaps the result into sc. A
// malformed file on a live edit is logged and otherwise ignored — the last
// good config stays in effect, per the engine's error-handling design. The
// returned stop function closes the underlying watcher; Watch itself returns
// at once, and its background goroutine keeps watching until stop is called.
func Watch(path string, sc *SharedConfig, logger *log.Logger) (stop func(), err error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write != fsnotify.Write {
					continue
				}
				time.Sleep(debounceWindow)

				cfg, err := LoadConfig(path)
				if err != nil {
					logger.Printf("[CONFIG] reload failed, keeping last-good config: %v", err)
					continue
				}
				sc.Update(cfg)
				logger.Printf("[CONFIG] reloaded from %s", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("[CONFIG] watcher error: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
