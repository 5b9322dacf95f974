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

// Package admin serves a read-only websocket feed of live store counters
// (DBSize, shard versions) for operators — not part of the RESP protocol,
// never mutates the store, grounded on the teacher's scm.HTTPServe use of
// gorilla/websocket.
package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rahulkeshervani/redikv/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// metrics is one sample pushed to connected admin clients.
type metrics struct {
	DBSize       int64    `json:"db_size"`
	ShardCount   int      `json:"shard_count"`
	ShardVersion []uint64 `json:"shard_version"`
}

// Server exposes /metrics over a websocket that streams a sample every
// Interval (default one second) until the client disconnects.
type Server struct {
	Store    *store.Store
	Interval time.Duration
}

func (s *Server) interval() time.Duration {
	if s.Interval <= 0 {
		return time.Second
	}
	return s.Interval
}

func (s *Server) sample() metrics {
	n := s.Store.ShardCount()
	versions := make([]uint64, n)
	for i := 0; i < n; i++ {
		versions[i] = s.Store.ShardVersion(i)
	}
	return metrics{
		DBSize:       s.Store.DBSize(),
		ShardCount:   n,
		ShardVersion: versions,
	}
}

// ServeHTTP upgrades the connection and streams metrics until the peer
// goes away; it never reads client frames, matching the "read-only" scope.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("redikv admin: upgrade failed: %v\n", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteJSON(s.sample()); err != nil {
			return
		}
	}
}

// Mux builds an *http.ServeMux with the metrics feed wired at /metrics.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s)
	return mux
}
