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
	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

// Type returns the family name of Key's value, or "none".
type Type struct{ Key []byte }

func parseType(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Type{Key: key}, nil
}

func (c Type) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Simple(st.Type(c.Key)))
}

// Keys returns every key matching Pattern ("*" or an exact literal).
type Keys struct{ Pattern string }

func parseKeys(a *argReader) (Command, error) {
	pattern, err := a.nextString()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Keys{Pattern: pattern}, nil
}

func (c Keys) Apply(st *store.Store, conn *resp.Conn) error {
	keys := st.Keys(c.Pattern)
	items := make([]resp.Frame, len(keys))
	for i, k := range keys {
		items[i] = resp.Bulk(k)
	}
	return conn.WriteFrame(resp.Array(items...))
}

// Scan is bug-compatible with the source this was distilled from: it
// always returns the full keyspace in one batch under cursor "0" — see
// spec.md §9's open question on cursor semantics. MATCH/COUNT options are
// accepted and parsed but only MATCH affects the result (as Keys would).
type Scan struct {
	Cursor  int64
	Pattern string
}

func parseScan(a *argReader) (Command, error) {
	cursor, err := a.nextInt()
	if err != nil {
		return nil, err
	}
	c := Scan{Cursor: cursor, Pattern: "*"}
	for a.len() > 0 {
		opt, _ := a.peekUpper()
		switch opt {
		case "MATCH":
			a.nextString() // consume MATCH
			pattern, err := a.nextString()
			if err != nil {
				return nil, err
			}
			c.Pattern = pattern
		case "COUNT":
			a.nextString() // consume COUNT
			if _, err := a.nextInt(); err != nil {
				return nil, err
			}
		default:
			return nil, protoErrf("syntax error")
		}
	}
	return c, nil
}

func (c Scan) Apply(st *store.Store, conn *resp.Conn) error {
	keys := st.Keys(c.Pattern)
	items := make([]resp.Frame, len(keys))
	for i, k := range keys {
		items[i] = resp.Bulk(k)
	}
	return conn.WriteFrame(resp.Array(resp.BulkString("0"), resp.Array(items...)))
}

// DBSize sums the key count across all shards.
type DBSize struct{}

func parseDBSize(a *argReader) (Command, error) {
	if err := a.finish(); err != nil {
		return nil, err
	}
	return DBSize{}, nil
}

func (DBSize) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Int(st.DBSize()))
}

// FlushDB clears every shard.
type FlushDB struct{}

func parseFlushDB(a *argReader) (Command, error) {
	if err := a.finish(); err != nil {
		return nil, err
	}
	return FlushDB{}, nil
}

func (FlushDB) Apply(st *store.Store, conn *resp.Conn) error {
	st.FlushDB()
	return conn.WriteFrame(resp.Simple("OK"))
}
