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

func wrongTypeOr(err error) resp.Frame {
	return resp.Err(err.Error())
}

// HSet creates an empty hash at Key if absent, then sets Field to Value.
type HSet struct{ Key, Field, Value []byte }

func parseHSet(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	field, err := a.nextBytes()
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
	return HSet{Key: key, Field: field, Value: value}, nil
}

func (c HSet) Apply(st *store.Store, conn *resp.Conn) error {
	created, err := st.HSet(c.Key, c.Field, c.Value)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	n := int64(0)
	if created {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// HGet returns the value of Field in the hash at Key.
type HGet struct{ Key, Field []byte }

func parseHGet(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	field, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HGet{Key: key, Field: field}, nil
}

func (c HGet) Apply(st *store.Store, conn *resp.Conn) error {
	v, ok, err := st.HGet(c.Key, c.Field)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	if !ok {
		return conn.WriteFrame(resp.Null())
	}
	return conn.WriteFrame(resp.Bulk(v))
}

// HDel removes Field from the hash at Key.
type HDel struct{ Key, Field []byte }

func parseHDel(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	field, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HDel{Key: key, Field: field}, nil
}

func (c HDel) Apply(st *store.Store, conn *resp.Conn) error {
	removed, err := st.HDel(c.Key, c.Field)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	n := int64(0)
	if removed {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// HExists reports whether Field is present in the hash at Key.
type HExists struct{ Key, Field []byte }

func parseHExists(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	field, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HExists{Key: key, Field: field}, nil
}

func (c HExists) Apply(st *store.Store, conn *resp.Conn) error {
	ok, err := st.HExists(c.Key, c.Field)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	n := int64(0)
	if ok {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// HGetAll returns all field/value pairs in the hash at Key, interleaved.
type HGetAll struct{ Key []byte }

func parseHGetAll(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HGetAll{Key: key}, nil
}

func (c HGetAll) Apply(st *store.Store, conn *resp.Conn) error {
	fields, values, err := st.HGetAll(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	items := make([]resp.Frame, 0, 2*len(fields))
	for i := range fields {
		items = append(items, resp.Bulk(fields[i]), resp.Bulk(values[i]))
	}
	return conn.WriteFrame(resp.Array(items...))
}

// HKeys returns the hash's field names.
type HKeys struct{ Key []byte }

func parseHKeys(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HKeys{Key: key}, nil
}

func (c HKeys) Apply(st *store.Store, conn *resp.Conn) error {
	fields, err := st.HKeys(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	items := make([]resp.Frame, len(fields))
	for i, f := range fields {
		items[i] = resp.Bulk(f)
	}
	return conn.WriteFrame(resp.Array(items...))
}

// HVals returns the hash's values.
type HVals struct{ Key []byte }

func parseHVals(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HVals{Key: key}, nil
}

func (c HVals) Apply(st *store.Store, conn *resp.Conn) error {
	values, err := st.HVals(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	items := make([]resp.Frame, len(values))
	for i, v := range values {
		items[i] = resp.Bulk(v)
	}
	return conn.WriteFrame(resp.Array(items...))
}

// HLen returns the number of fields in the hash at Key.
type HLen struct{ Key []byte }

func parseHLen(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return HLen{Key: key}, nil
}

func (c HLen) Apply(st *store.Store, conn *resp.Conn) error {
	n, err := st.HLen(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	return conn.WriteFrame(resp.Int(int64(n)))
}

// HScan is bug-compatible with the source this was distilled from: it
// always returns the full field/value snapshot in one batch under cursor
// "0" (spec.md §9).
type HScan struct{ Key []byte }

func parseHScan(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if _, err := a.nextInt(); err != nil { // cursor, ignored
		return nil, err
	}
	for a.len() > 0 {
		opt, _ := a.peekUpper()
		switch opt {
		case "MATCH":
			a.nextString()
			if _, err := a.nextString(); err != nil {
				return nil, err
			}
		case "COUNT":
			a.nextString()
			if _, err := a.nextInt(); err != nil {
				return nil, err
			}
		default:
			return nil, protoErrf("syntax error")
		}
	}
	return HScan{Key: key}, nil
}

func (c HScan) Apply(st *store.Store, conn *resp.Conn) error {
	fields, values, err := st.HGetAll(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	items := make([]resp.Frame, 0, 2*len(fields))
	for i := range fields {
		items = append(items, resp.Bulk(fields[i]), resp.Bulk(values[i]))
	}
	return conn.WriteFrame(resp.Array(resp.BulkString("0"), resp.Array(items...)))
}
