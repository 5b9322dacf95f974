/*
Copyright (C) 2026  redikv contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rahulkeshervani/redikv/store"
)

// objectName is the single snapshot artifact's name within a Backend.
// There is one object per store, not one per shard: Dump already streams
// every shard's contents into one record stream (store/dump.go).
const objectName = "redikv.snapshot"

// Snapshotter periodically dumps a store.Store through a Codec into a
// Backend, and can restore one at startup.
type Snapshotter struct {
	Store   *store.Store
	Backend Backend
	Codec   Codec
}

// New builds a Snapshotter, resolving codecName via CodecByName.
func New(st *store.Store, backend Backend, codecName string) (*Snapshotter, error) {
	codec, err := CodecByName(codecName)
	if err != nil {
		return nil, err
	}
	return &Snapshotter{Store: st, Backend: backend, Codec: codec}, nil
}

// Save writes one compressed snapshot of the Store to the Backend.
func (s *Snapshotter) Save() error {
	pr, pw := io.Pipe()
	dumpErr := make(chan error, 1)
	go func() {
		cw := s.Codec.NewWriter(pw)
		err := s.Store.Dump(cw)
		if cerr := cw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
		dumpErr <- err
	}()

	writeErr := s.Backend.Write(objectName, pr)
	pr.Close() // unblock the producer goroutine if it is still writing
	if writeErr != nil {
		<-dumpErr
		return fmt.Errorf("snapshot: write: %w", writeErr)
	}
	return <-dumpErr
}

// Load restores the Store from the most recent snapshot in the Backend. A
// missing snapshot is not an error: it means the server is starting empty.
func (s *Snapshotter) Load() error {
	rc, err := s.Backend.Read(objectName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("snapshot: read: %w", err)
	}
	defer rc.Close()

	dr, err := s.Codec.NewReader(rc)
	if err != nil {
		return fmt.Errorf("snapshot: decompress: %w", err)
	}
	return s.Store.Load(dr)
}

// Run saves a snapshot every interval until stop is closed, logging (not
// panicking) on a failed save so a transient backend outage never takes
// down the server — mirrors the teacher's scm.initMetricsSampler's
// ticker-driven background goroutine.
func (s *Snapshotter) Run(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := s.Save(); err != nil {
				fmt.Printf("redikv: snapshot save failed: %v\n", err)
			}
		}
	}
}
