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

// Package session implements the per-connection command dispatcher and its
// MULTI/EXEC/WATCH/DISCARD transaction state machine. One Session owns one
// connection exclusively; no session state is ever shared across
// connections except through the store and the coordination Lease.
package session

import (
	"errors"
	"io"

	"github.com/rahulkeshervani/redikv/command"
	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

// state is the two-state transaction machine from spec.md §4.5.
type state int

const (
	idle state = iota
	buffering
)

type watchEntry struct {
	shardIndex int
	version    uint64
}

// Session dispatches commands read off conn against st, holding lease in
// shared mode for ordinary commands and exclusive mode for an EXEC drain
// (spec.md §5's "two-tier locking").
type Session struct {
	store *store.Store
	conn  *resp.Conn
	lease *Lease

	state   state
	queue   []command.Command
	watches map[string]watchEntry
	dirty   bool
}

// New builds a Session bound to one accepted connection. lease is shared
// across every Session served by the same listener.
func New(st *store.Store, lease *Lease, conn *resp.Conn) *Session {
	return &Session{store: st, conn: conn, lease: lease}
}

// Serve runs the read-dispatch-write loop until the peer disconnects or a
// frame-level protocol error makes the connection unrecoverable. A nil
// return means the peer closed the connection cleanly.
func (s *Session) Serve() error {
	for {
		frame, err := s.conn.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		parsed, err := command.Parse(frame)
		if err != nil {
			if s.state == buffering {
				s.dirty = true
			}
			if werr := s.conn.WriteFrame(resp.Err(err.Error())); werr != nil {
				return werr
			}
			continue
		}

		if err := s.dispatch(parsed); err != nil {
			return err
		}
	}
}

func (s *Session) dispatch(parsed any) error {
	switch v := parsed.(type) {
	case command.Multi:
		return s.onMulti()
	case command.Discard:
		return s.onDiscard()
	case command.Exec:
		return s.onExec()
	case command.Watch:
		return s.onWatch(v)
	case command.Command:
		return s.onCommand(v)
	default:
		return s.conn.WriteFrame(resp.Errf("ERR unrecognized command value"))
	}
}

func (s *Session) onMulti() error {
	if s.state == buffering {
		return s.conn.WriteFrame(resp.Err("ERR MULTI calls can not be nested"))
	}
	s.state = buffering
	s.queue = nil
	s.dirty = false
	return s.conn.WriteFrame(resp.Simple("OK"))
}

func (s *Session) onDiscard() error {
	if s.state != buffering {
		return s.conn.WriteFrame(resp.Err("ERR DISCARD without MULTI"))
	}
	s.resetTransaction()
	return s.conn.WriteFrame(resp.Simple("OK"))
}

func (s *Session) onWatch(w command.Watch) error {
	if s.state == buffering {
		return s.conn.WriteFrame(resp.Err("ERR WATCH inside MULTI is not allowed"))
	}
	s.lease.RLock()
	if s.watches == nil {
		s.watches = make(map[string]watchEntry, len(w.Keys))
	}
	for _, key := range w.Keys {
		idx := s.store.ShardIndex(key)
		s.watches[string(key)] = watchEntry{
			shardIndex: idx,
			version:    s.store.ShardVersion(idx),
		}
	}
	s.lease.RUnlock()
	return s.conn.WriteFrame(resp.Simple("OK"))
}

func (s *Session) onExec() error {
	if s.state != buffering {
		return s.conn.WriteFrame(resp.Err("ERR EXEC without MULTI"))
	}

	if s.dirty {
		s.resetTransaction()
		return s.conn.WriteFrame(resp.Err("EXECABORT Transaction discarded because of previous errors."))
	}

	queued := s.queue
	watches := s.watches
	s.resetTransaction()

	s.lease.Lock()
	defer s.lease.Unlock()

	for _, w := range watches {
		if s.store.ShardVersion(w.shardIndex) != w.version {
			return s.conn.WriteFrame(resp.Null())
		}
	}

	if err := s.conn.StartArray(len(queued)); err != nil {
		return err
	}
	if len(queued) == 0 {
		return s.conn.Flush()
	}
	for _, cmd := range queued {
		if err := cmd.Apply(s.store, s.conn); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) onCommand(cmd command.Command) error {
	if s.state == buffering {
		s.queue = append(s.queue, cmd)
		return s.conn.WriteFrame(resp.Simple("QUEUED"))
	}
	s.lease.RLock()
	defer s.lease.RUnlock()
	return cmd.Apply(s.store, s.conn)
}

func (s *Session) resetTransaction() {
	s.state = idle
	s.queue = nil
	s.watches = nil
	s.dirty = false
}
