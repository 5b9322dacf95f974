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

package snapshot

import (
	"testing"

	"github.com/rahulkeshervani/redikv/store"
)

func seed(s *store.Store) {
	s.Set([]byte("greeting"), []byte("hello"))
	s.LPush([]byte("list"), []byte("a"), []byte("b"))
	s.SAdd([]byte("set"), []byte("x"))
	s.HSet([]byte("hash"), []byte("f"), []byte("v"))
	s.ZAdd([]byte("zset"), 1, []byte("a"))
}

func TestSaveLoadRoundTripAllCodecs(t *testing.T) {
	for _, codec := range []string{"lz4", "xz", "none", ""} {
		codec := codec
		t.Run(codec, func(t *testing.T) {
			dir := t.TempDir()
			src := store.New(8)
			seed(src)

			saver, err := New(src, LocalBackend{Dir: dir}, codec)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if err := saver.Save(); err != nil {
				t.Fatalf("Save: %v", err)
			}

			dst := store.New(8)
			loader, err := New(dst, LocalBackend{Dir: dir}, codec)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if err := loader.Load(); err != nil {
				t.Fatalf("Load: %v", err)
			}

			if v, ok := dst.Get([]byte("greeting")); !ok || string(v) != "hello" {
				t.Fatalf("greeting = %q %v", v, ok)
			}
			if dst.DBSize() != 5 {
				t.Fatalf("DBSize = %d, want 5", dst.DBSize())
			}
		})
	}
}

func TestLoadMissingSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	dst := store.New(4)
	loader, err := New(dst, LocalBackend{Dir: dir}, "lz4")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := loader.Load(); err != nil {
		t.Fatalf("Load on missing snapshot should succeed, got %v", err)
	}
	if dst.DBSize() != 0 {
		t.Fatalf("DBSize = %d, want 0", dst.DBSize())
	}
}

func TestUnknownCodecRejected(t *testing.T) {
	if _, err := New(store.New(1), LocalBackend{Dir: t.TempDir()}, "bogus"); err == nil {
		t.Fatal("expected an error for an unknown codec")
	}
}
