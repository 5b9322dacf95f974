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

package command

import (
	"fmt"

	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

// ServerVersion is reported by INFO. Persistence, replication and cluster
// concerns are out of scope (spec.md §1), so INFO only reports the handful
// of fields a client typically inspects.
const ServerVersion = "7.4.0-redikv"

// Ping replies PONG with no argument, or echoes a single Bulk argument.
type Ping struct {
	Msg    []byte
	HasMsg bool
}

func parsePing(a *argReader) (Command, error) {
	var c Ping
	if a.len() > 1 {
		return nil, protoErrf("wrong number of arguments for 'ping' command")
	}
	if a.len() == 1 {
		msg, err := a.nextBytes()
		if err != nil {
			return nil, err
		}
		c.Msg, c.HasMsg = msg, true
	}
	return c, nil
}

func (c Ping) Apply(st *store.Store, conn *resp.Conn) error {
	if !c.HasMsg {
		return conn.WriteFrame(resp.Simple("PONG"))
	}
	return conn.WriteFrame(resp.Bulk(c.Msg))
}

// Auth always succeeds (spec.md §1: authentication enforcement is out of
// scope).
type Auth struct{}

func parseAuth(a *argReader) (Command, error) {
	// drain 1 or 2 args ([user] password) without validating them.
	for a.len() > 0 {
		if _, err := a.nextBytes(); err != nil {
			return nil, err
		}
	}
	return Auth{}, nil
}

func (Auth) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Simple("OK"))
}

// Info reports a fixed set of key:value lines. section is accepted but
// ignored — there is only one section's worth of data to report.
type Info struct {
	Section string
}

func parseInfo(a *argReader) (Command, error) {
	var c Info
	if a.len() > 0 {
		s, err := a.nextString()
		if err != nil {
			return nil, err
		}
		c.Section = s
	}
	return c, nil
}

func (c Info) Apply(st *store.Store, conn *resp.Conn) error {
	body := fmt.Sprintf(
		"# Server\r\nredis_version:%s\r\nrole:master\r\ntcp_port:6379\r\n"+
			"# Keyspace\r\ndb0:keys=%d\r\n",
		ServerVersion, st.DBSize(),
	)
	return conn.WriteFrame(resp.BulkString(body))
}

// Select always succeeds — a single logical database is served (spec.md
// §1).
type Select struct{ Index int64 }

func parseSelect(a *argReader) (Command, error) {
	idx, err := a.nextInt()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Select{Index: idx}, nil
}

func (Select) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Simple("OK"))
}
