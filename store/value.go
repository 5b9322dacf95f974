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

package store

import "container/list"

// Kind identifies the data-type family a stored Value belongs to.
type Kind int

const (
	KindString Kind = iota
	KindList
	KindSet
	KindHash
	KindZSet
	KindJSON
)

// TypeName returns the RESP TYPE response for k ("none" has no Kind and is
// handled by Store.Type directly).
func (k Kind) TypeName() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindHash:
		return "hash"
	case KindZSet:
		return "zset"
	case KindJSON:
		return "ReJSON-RL"
	default:
		return "none"
	}
}

// Value is the sum type stored per key: a string, a list, a set, a hash, a
// sorted set or a JSON document.
type Value interface {
	Kind() Kind
}

// stringValue holds an opaque byte string.
type stringValue []byte

func (stringValue) Kind() Kind { return KindString }

// listValue holds an ordered sequence of byte elements, efficient at both
// ends via container/list.
type listValue struct {
	l *list.List
}

func newListValue() *listValue { return &listValue{l: list.New()} }

func (*listValue) Kind() Kind { return KindList }

func (v *listValue) len() int { return v.l.Len() }

// slice returns a left-to-right snapshot of the list's elements.
func (v *listValue) slice() [][]byte {
	out := make([][]byte, 0, v.l.Len())
	for e := v.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.([]byte))
	}
	return out
}

// setValue holds a set of unique byte members, keyed by their string form.
type setValue map[string][]byte

func (setValue) Kind() Kind { return KindSet }

// hashValue maps field names to values, both byte strings.
type hashValue map[string][]byte

func (hashValue) Kind() Kind { return KindHash }

// jsonValue holds the canonical (compact, re-marshaled) JSON encoding of
// an arbitrary document.
type jsonValue struct {
	raw []byte
}

func (*jsonValue) Kind() Kind { return KindJSON }
