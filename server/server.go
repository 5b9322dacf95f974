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

// Package server runs the TCP accept loop: one goroutine per connection,
// each driving its own session.Session against a shared store.Store and
// session.Lease (spec.md §5's "many cooperative tasks... one per accepted
// connection").
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/server/settings"
	"github.com/rahulkeshervani/redikv/session"
	"github.com/rahulkeshervani/redikv/store"
)

// Server owns the listener and the shared store/lease every accepted
// connection's Session is dispatched against.
type Server struct {
	settings *settings.Settings
	store    *store.Store
	lease    *session.Lease

	mu       sync.Mutex
	listener net.Listener
	wg       sync.WaitGroup
}

// New builds a Server over a fresh Store sized per cfg.
func New(cfg *settings.Settings) *Server {
	return &Server{
		settings: cfg,
		store:    store.New(cfg.ShardCount),
		lease:    session.NewLease(),
	}
}

// Store returns the backing store, for components (snapshotting, admin
// metrics) that need to read it outside the connection path.
func (s *Server) Store() *store.Store { return s.store }

// ListenAndServe binds the configured address and accepts connections
// until Close is called. It blocks until the listener is closed.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.settings.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.settings.ListenAddr, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	fmt.Printf("redikv listening on %s\n", s.settings.ListenAddr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if isClosed(err) {
				s.wg.Wait()
				return nil
			}
			return err
		}
		s.wg.Add(1)
		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	id := newConnID()
	remote := conn.RemoteAddr().String()
	fmt.Printf("redikv: connection %s from %s opened\n", id, remote)

	rc := resp.NewConn(conn)
	if limit := s.settings.Snapshot().MaxFrameSize; limit > 0 {
		rc.MaxFrameSize = int(limit)
	}
	sess := session.New(s.store, s.lease, rc)
	if err := sess.Serve(); err != nil {
		fmt.Printf("redikv: connection %s closed: %v\n", id, err)
		return
	}
	fmt.Printf("redikv: connection %s closed\n", id)
}

// Close stops accepting new connections. Connections already accepted run
// to completion (spec.md §5: "resources scoped to a connection are
// released on task exit").
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	return ln.Close()
}

func isClosed(err error) bool {
	return err != nil && (err == net.ErrClosed || isUseOfClosedConn(err))
}

func isUseOfClosedConn(err error) bool {
	ne, ok := err.(*net.OpError)
	return ok && ne.Err != nil && ne.Err.Error() == "use of closed network connection"
}
