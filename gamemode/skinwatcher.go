package gamemode

import (
	"github.com/fsnotify/fsnotify"

	"github.com/tataku/tataku-core/internal/gamelog"
)

// SkinWatcher forwards filesystem changes under a skin/sample directory
// to a Mode's ReloadSkin, satisfying spec.md §5's "releasing skin
// textures through reload_skin" teardown path from the live, on-disk-edit
// side (as opposed to the explicit settings-change call site). Grounded
// on the teacher's own fsnotify dependency, used the same way danser
// watches a skin directory for live-reload during development.
type SkinWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewSkinWatcher starts watching dir for writes/creates/removes.
func NewSkinWatcher(dir string) (*SkinWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &SkinWatcher{watcher: w, done: make(chan struct{})}, nil
}

// Watch runs until Close is called, calling mode.ReloadSkin(TextureSourceSkin)
// whenever dir changes. Intended to run in its own goroutine.
func (sw *SkinWatcher) Watch(mode Mode) {
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				mode.ReloadSkin(TextureSourceSkin)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			gamelog.Warn("skin watcher: %v", err)
		case <-sw.done:
			return
		}
	}
}

// Close stops the watcher.
func (sw *SkinWatcher) Close() error {
	close(sw.done)
	return sw.watcher.Close()
}
