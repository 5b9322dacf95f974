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

import (
	"bytes"
	"sort"
	"testing"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	s := New(8)
	s.Set(b("str"), b("hello"))
	s.LPush(b("list"), b("a"), b("b"))
	s.SAdd(b("set"), b("x"))
	s.SAdd(b("set"), b("y"))
	s.HSet(b("hash"), b("f"), b("v"))
	s.ZAdd(b("zset"), 1, b("a"))
	s.ZAdd(b("zset"), 2, b("b"))
	if err := s.JSONSet(b("doc"), "$", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("JSONSet: %v", err)
	}

	var buf bytes.Buffer
	if err := s.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	s2 := New(8)
	if err := s2.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if v, ok := s2.Get(b("str")); !ok || string(v) != "hello" {
		t.Fatalf("str = %q %v", v, ok)
	}
	list, err := s2.LRange(b("list"), 0, -1)
	if err != nil || len(list) != 2 || string(list[0]) != "b" || string(list[1]) != "a" {
		t.Fatalf("list = %v err=%v", list, err)
	}
	members, err := s2.SMembers(b("set"))
	if err != nil || len(members) != 2 {
		t.Fatalf("set = %v err=%v", members, err)
	}
	sort.Slice(members, func(i, j int) bool { return string(members[i]) < string(members[j]) })
	if string(members[0]) != "x" || string(members[1]) != "y" {
		t.Fatalf("set members = %v", members)
	}
	if v, ok, err := s2.HGet(b("hash"), b("f")); err != nil || !ok || string(v) != "v" {
		t.Fatalf("hash = %q %v err=%v", v, ok, err)
	}
	zitems, err := s2.ZRange(b("zset"), 0, -1)
	if err != nil || len(zitems) != 2 || zitems[0].Score != 1 || zitems[1].Score != 2 {
		t.Fatalf("zset = %v err=%v", zitems, err)
	}
	doc, ok, err := s2.JSONGet(b("doc"), "$")
	if err != nil || !ok || !bytes.Equal(doc, []byte(`{"a":1}`)) {
		t.Fatalf("doc = %q %v err=%v", doc, ok, err)
	}
	if s2.DBSize() != 6 {
		t.Fatalf("DBSize = %d, want 6", s2.DBSize())
	}
}

func TestLoadClearsPriorContents(t *testing.T) {
	s := New(4)
	s.Set(b("old"), b("v"))

	var buf bytes.Buffer
	empty := New(4)
	if err := empty.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if err := s.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Exists(b("old")) {
		t.Fatal("expected Load to clear prior contents")
	}
}
