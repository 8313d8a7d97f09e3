// This file is part of Gopher8563.
//
// Gopher8563 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8563 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8563.  If not, see <https://www.gnu.org/licenses/>.

package colourgen

import (
	"path/filepath"

	"github.com/howeyc/fsnotify"

	"github.com/jetsetilly/gopher8563/logger"
)

// Watcher marks the colour tables as stale whenever the palette file changes.
// The new palette is loaded the next time the tables are refreshed, which
// for the VDC is the start of the next frame.
type Watcher struct {
	w    *fsnotify.Watcher
	path string
	done chan bool
}

// Watch starts watching the named palette file. The directory containing the
// file is watched so that editors that replace the file rather than write to
// it are also noticed.
func (c *ColourGen) Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := w.Watch(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	wt := &Watcher{
		w:    w,
		path: path,
		done: make(chan bool),
	}

	go func() {
		defer close(wt.done)
		errs := w.Error
		for {
			select {
			case ev, ok := <-w.Event:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) == wt.path && !ev.IsAttrib() {
					logger.Logf(logger.Allow, "colourgen", "palette file changed: %s", wt.path)
					c.MarkStale()
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Logf(logger.Allow, "colourgen", "watcher: %v", err)
			}
		}
	}()

	return wt, nil
}

// Close stops watching the palette file.
func (wt *Watcher) Close() error {
	err := wt.w.Close()
	<-wt.done
	return err
}
