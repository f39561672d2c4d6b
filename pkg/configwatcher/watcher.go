package configwatcher

import (
	"path/filepath"
	"time"

	"daily_quiz_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch observes the config file and invokes onChange after edits settle.
// Editors often fire several write events per save, so changes are debounced.
func Watch(configPath string, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var debounce *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != configPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, func() {
					logger.Log.Info("config file changed, reloading", zap.String("path", configPath))
					onChange()
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Log.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	return watcher, nil
}
