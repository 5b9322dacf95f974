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

// LPush pushes Values onto the head of the list at Key, left to right, so
// the last Value ends up closest to the head.
type LPush struct {
	Key    []byte
	Values [][]byte
}

func parseLPush(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if a.len() == 0 {
		return nil, protoErrf("wrong number of arguments for 'lpush' command")
	}
	var values [][]byte
	for a.len() > 0 {
		v, err := a.nextBytes()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return LPush{Key: key, Values: values}, nil
}

func (c LPush) Apply(st *store.Store, conn *resp.Conn) error {
	n, err := st.LPush(c.Key, c.Values...)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	return conn.WriteFrame(resp.Int(int64(n)))
}

// RPush pushes Values onto the tail of the list at Key, left to right.
type RPush struct {
	Key    []byte
	Values [][]byte
}

func parseRPush(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if a.len() == 0 {
		return nil, protoErrf("wrong number of arguments for 'rpush' command")
	}
	var values [][]byte
	for a.len() > 0 {
		v, err := a.nextBytes()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return RPush{Key: key, Values: values}, nil
}

func (c RPush) Apply(st *store.Store, conn *resp.Conn) error {
	n, err := st.RPush(c.Key, c.Values...)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	return conn.WriteFrame(resp.Int(int64(n)))
}

// LPop removes and returns the list's head element.
type LPop struct{ Key []byte }

func parseLPop(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return LPop{Key: key}, nil
}

func (c LPop) Apply(st *store.Store, conn *resp.Conn) error {
	v, ok, err := st.LPop(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	if !ok {
		return conn.WriteFrame(resp.Null())
	}
	return conn.WriteFrame(resp.Bulk(v))
}

// RPop removes and returns the list's tail element.
type RPop struct{ Key []byte }

func parseRPop(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return RPop{Key: key}, nil
}

func (c RPop) Apply(st *store.Store, conn *resp.Conn) error {
	v, ok, err := st.RPop(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	if !ok {
		return conn.WriteFrame(resp.Null())
	}
	return conn.WriteFrame(resp.Bulk(v))
}

// LRange returns the elements between Start and Stop inclusive, both of
// which may be negative (counted from the tail).
type LRange struct {
	Key         []byte
	Start, Stop int64
}

func parseLRange(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	start, err := a.nextInt()
	if err != nil {
		return nil, err
	}
	stop, err := a.nextInt()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return LRange{Key: key, Start: start, Stop: stop}, nil
}

func (c LRange) Apply(st *store.Store, conn *resp.Conn) error {
	values, err := st.LRange(c.Key, c.Start, c.Stop)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	items := make([]resp.Frame, len(values))
	for i, v := range values {
		items[i] = resp.Bulk(v)
	}
	return conn.WriteFrame(resp.Array(items...))
}
