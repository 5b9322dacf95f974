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

// Get returns the String at Key, or Null if absent or of another family.
type Get struct{ Key []byte }

func parseGet(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Get{Key: key}, nil
}

func (c Get) Apply(st *store.Store, conn *resp.Conn) error {
	v, ok := st.Get(c.Key)
	if !ok {
		return conn.WriteFrame(resp.Null())
	}
	return conn.WriteFrame(resp.Bulk(v))
}

// Set unconditionally overwrites Key with Value.
type Set struct{ Key, Value []byte }

func parseSet(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	value, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Set{Key: key, Value: value}, nil
}

func (c Set) Apply(st *store.Store, conn *resp.Conn) error {
	st.Set(c.Key, c.Value)
	return conn.WriteFrame(resp.Simple("OK"))
}

// Del removes Key regardless of family, returning 1 if it was present.
type Del struct{ Key []byte }

func parseDel(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Del{Key: key}, nil
}

func (c Del) Apply(st *store.Store, conn *resp.Conn) error {
	n := int64(0)
	if st.Del(c.Key) {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// Exists reports whether Key is present, regardless of family.
type Exists struct{ Key []byte }

func parseExists(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return Exists{Key: key}, nil
}

func (c Exists) Apply(st *store.Store, conn *resp.Conn) error {
	n := int64(0)
	if st.Exists(c.Key) {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// TTL reports -1 (present, no real TTL tracked) or -2 (absent).
type TTL struct{ Key []byte }

func parseTTL(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return TTL{Key: key}, nil
}

func (c TTL) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Int(st.TTL(c.Key)))
}

// PTTL mirrors TTL at millisecond resolution.
type PTTL struct{ Key []byte }

func parsePTTL(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return PTTL{Key: key}, nil
}

func (c PTTL) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Int(st.PTTL(c.Key)))
}
