package viewer

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	bh "github.com/lukaszgryglicki/blackhole/internal/blackhole"
)

// configWatcher reloads the config file whenever it is written and hands the
// latest successfully parsed version to the render loop.
type configWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *bh.Config
	done    chan struct{}
}

// watchConfig watches the directory holding path, so that editors replacing
// the file by rename are seen too.
func watchConfig(path string) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	cw := &configWatcher{
		path:    abs,
		watcher: w,
		updates: make(chan *bh.Config, 1),
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

func (cw *configWatcher) loop() {
	for {
		select {
		case <-cw.done:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := bh.LoadConfig(cw.path)
			if err != nil {
				bh.Logger().Warn("config reload failed", "path", cw.path, "err", err)
				continue
			}
			bh.Logger().Info("config reloaded", "path", cw.path)
			// keep only the newest
			select {
			case <-cw.updates:
			default:
			}
			cw.updates <- cfg
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			bh.Logger().Warn("config watcher", "err", err)
		}
	}
}

// latest returns a pending reload, if any.
func (cw *configWatcher) latest() (*bh.Config, bool) {
	select {
	case cfg := <-cw.updates:
		return cfg, true
	default:
		return nil, false
	}
}

func (cw *configWatcher) Close() error {
	close(cw.done)
	return cw.watcher.Close()
}
