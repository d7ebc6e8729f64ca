/*
 * ============= Ryft-Customized BSD License ============
 * Copyright (c) 2015, Ryft Systems, Inc.
 * All rights reserved.
 * Redistribution and use in source and binary forms, with or without modification,
 * are permitted provided that the following conditions are met:
 *
 * 1. Redistributions of source code must retain the above copyright notice,
 *   this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright notice,
 *   this list of conditions and the following disclaimer in the documentation and/or
 *   other materials provided with the distribution.
 * 3. All advertising materials mentioning features or use of this software must display the following acknowledgement:
 *   This product includes software developed by Ryft Systems, Inc.
 * 4. Neither the name of Ryft Systems, Inc. nor the names of its contributors may be used
 *   to endorse or promote products derived from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY RYFT SYSTEMS, INC. ''AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL RYFT SYSTEMS, INC. BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
 * LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
 * ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
 * SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 * ============
 */

package rest

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher follows the configuration file
// and reloads server's options on change.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
}

// WatchConfig starts watching the configuration file.
// The parent directory is watched since editors usually replace files.
func (s *Server) WatchConfig(fileName string) (*ConfigWatcher, error) {
	path, err := filepath.Abs(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path of %q: %s", fileName, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %s", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %q: %s", filepath.Dir(path), err)
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    path,
		done:    make(chan struct{}),
	}
	go cw.process(s)

	return cw, nil // OK
}

// process file events until watcher is closed
func (cw *ConfigWatcher) process(s *Server) {
	defer close(cw.done)

	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return // closed
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue // another file
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfgLog.WithField("event", ev).Debug("configuration changed")
			if err := s.Reload(cw.path); err != nil {
				cfgLog.WithError(err).WithField("file", cw.path).Warn("failed to reload configuration")
			} else {
				cfgLog.WithFields(map[string]interface{}{
					"file":    cw.path,
					"options": s.Options(),
				}).Info("configuration reloaded")
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return // closed
			}
			cfgLog.WithError(err).Warn("configuration watcher error")
		}
	}
}

// Close stops watching.
func (cw *ConfigWatcher) Close() error {
	err := cw.watcher.Close()
	<-cw.done
	return err
}
