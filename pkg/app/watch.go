package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lexero/logospin/pkg/media"
	xos "github.com/lexero/logospin/pkg/os"
)

// settleDelay coalesces the burst of events an editor produces when it
// saves a file.
const settleDelay = 200 * time.Millisecond

// Watch renders once, then re-renders whenever the input file changes,
// until done fires. A file lock around the output keeps concurrent
// watchers from interleaving writes.
func (a *App) Watch(done <-chan struct{}) error {
	if media.IsURL(a.input) {
		return fmt.Errorf("cannot watch a URL input %q", a.input)
	}

	lock, err := xos.NewFileLock(a.OutputPath() + ".lock")
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// watch the directory: editors typically replace the file, which
	// would silently detach a watch on the file itself
	input := filepath.Clean(a.input)
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return err
	}

	a.renderLocked(lock)

	settle := time.NewTimer(settleDelay)
	if !settle.Stop() {
		<-settle.C
	}

	a.log.Info().Str("input", input).Msg("watching for changes")
	for {
		select {
		case ev := <-watcher.Events:
			if filepath.Clean(ev.Name) != input {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle.Reset(settleDelay)
		case <-settle.C:
			a.renderLocked(lock)
		case err := <-watcher.Errors:
			a.log.Error().Err(err).Msg("watch error")
		case <-done:
			return nil
		}
	}
}

func (a *App) renderLocked(lock *xos.Flock) {
	if err := lock.Lock(); err != nil {
		a.log.Error().Err(err).Msg("output lock failed")
		return
	}
	defer func() { _ = lock.Unlock() }()

	if err := a.Run(); err != nil {
		a.log.Error().Err(err).Msg("render failed")
	}
}
