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

// JSONSet stores Text at Key under Path. Only the root path ("$" or ".")
// is supported (spec.md §9's open question is resolved against partial
// JSON-path writes).
type JSONSet struct {
	Key, Path, Text []byte
}

func parseJSONSet(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	path, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	text, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return JSONSet{Key: key, Path: path, Text: text}, nil
}

func (c JSONSet) Apply(st *store.Store, conn *resp.Conn) error {
	if err := st.JSONSet(c.Key, string(c.Path), c.Text); err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	return conn.WriteFrame(resp.Simple("OK"))
}

// JSONGet reads the document at Key under Path.
type JSONGet struct {
	Key, Path []byte
}

func parseJSONGet(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	c := JSONGet{Key: key, Path: []byte("$")}
	if a.len() > 0 {
		path, err := a.nextBytes()
		if err != nil {
			return nil, err
		}
		c.Path = path
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c JSONGet) Apply(st *store.Store, conn *resp.Conn) error {
	text, ok, err := st.JSONGet(c.Key, string(c.Path))
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	if !ok {
		return conn.WriteFrame(resp.Null())
	}
	return conn.WriteFrame(resp.Bulk(text))
}
