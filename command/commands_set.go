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

// SAdd adds Member to the set at Key, returning 1 if it was newly added.
type SAdd struct{ Key, Member []byte }

func parseSAdd(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	member, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return SAdd{Key: key, Member: member}, nil
}

func (c SAdd) Apply(st *store.Store, conn *resp.Conn) error {
	added, err := st.SAdd(c.Key, c.Member)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	n := int64(0)
	if added {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// SRem removes Member from the set at Key, returning 1 if it was present.
type SRem struct{ Key, Member []byte }

func parseSRem(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	member, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return SRem{Key: key, Member: member}, nil
}

func (c SRem) Apply(st *store.Store, conn *resp.Conn) error {
	removed, err := st.SRem(c.Key, c.Member)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	n := int64(0)
	if removed {
		n = 1
	}
	return conn.WriteFrame(resp.Int(n))
}

// SMembers returns every member of the set at Key, in unspecified order.
type SMembers struct{ Key []byte }

func parseSMembers(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return SMembers{Key: key}, nil
}

func (c SMembers) Apply(st *store.Store, conn *resp.Conn) error {
	members, err := st.SMembers(c.Key)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	items := make([]resp.Frame, len(members))
	for i, m := range members {
		items[i] = resp.Bulk(m)
	}
	return conn.WriteFrame(resp.Array(items...))
}
