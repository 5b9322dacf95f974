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
	"github.com/shopspring/decimal"

	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

type zsetPair struct {
	Score  float64
	Member []byte
}

// ZAdd adds or updates one or more (score, member) Pairs in the sorted set
// at Key. The reply counts only members newly added, matching ZAdd's
// per-call semantics in store.
type ZAdd struct {
	Key   []byte
	Pairs []zsetPair
}

func parseZAdd(a *argReader) (Command, error) {
	key, err := a.nextBytes()
	if err != nil {
		return nil, err
	}
	if a.len() == 0 || a.len()%2 != 0 {
		return nil, protoErrf("wrong number of arguments for 'zadd' command")
	}
	var pairs []zsetPair
	for a.len() > 0 {
		score, err := a.nextFloat()
		if err != nil {
			return nil, err
		}
		member, err := a.nextBytes()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, zsetPair{Score: score, Member: member})
	}
	return ZAdd{Key: key, Pairs: pairs}, nil
}

func (c ZAdd) Apply(st *store.Store, conn *resp.Conn) error {
	var added int64
	for _, p := range c.Pairs {
		ok, err := st.ZAdd(c.Key, p.Score, p.Member)
		if err != nil {
			return conn.WriteFrame(wrongTypeOr(err))
		}
		if ok {
			added++
		}
	}
	return conn.WriteFrame(resp.Int(added))
}

// ZRange returns members between Start and Stop inclusive, ordered by
// ascending score. WithScores additionally interleaves each member's score,
// formatted as a plain decimal (github.com/shopspring/decimal), matching
// how Redis renders float replies without exponent notation.
type ZRange struct {
	Key         []byte
	Start, Stop int64
	WithScores  bool
}

func parseZRange(a *argReader) (Command, error) {
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
	c := ZRange{Key: key, Start: start, Stop: stop}
	if a.len() > 0 {
		opt, _ := a.peekUpper()
		if opt != "WITHSCORES" {
			return nil, protoErrf("syntax error")
		}
		a.nextString()
		c.WithScores = true
	}
	if err := a.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c ZRange) Apply(st *store.Store, conn *resp.Conn) error {
	items, err := st.ZRange(c.Key, c.Start, c.Stop)
	if err != nil {
		return conn.WriteFrame(wrongTypeOr(err))
	}
	if !c.WithScores {
		out := make([]resp.Frame, len(items))
		for i, it := range items {
			out[i] = resp.Bulk(it.Member)
		}
		return conn.WriteFrame(resp.Array(out...))
	}
	out := make([]resp.Frame, 0, 2*len(items))
	for _, it := range items {
		score := decimal.NewFromFloat(it.Score).String()
		out = append(out, resp.Bulk(it.Member), resp.BulkString(score))
	}
	return conn.WriteFrame(resp.Array(out...))
}
