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
	"hash/maphash"
	"sync"
)

// DefaultShardCount is the recommended number of shards (spec.md §3).
const DefaultShardCount = 64

// shard owns one partition of the key space: its own map and a
// monotonically increasing version counter, guarded by a single mutex.
// Mutating operations hold the mutex exclusively for the duration of the
// mutation; read-only operations hold it too (a plain mutex rather than an
// RWMutex, since shard critical sections are short and CPU-bound — see
// DESIGN.md).
type shard struct {
	mu      sync.Mutex
	data    map[string]Value
	version uint64
}

// Store is the sharded, concurrent key-value store. The shard for a key is
// chosen by a hash of the key bytes, seeded once at construction so the
// mapping is stable for the process's lifetime.
type Store struct {
	shards []*shard
	seed   maphash.Seed
}

// New creates a Store with shardCount shards (DefaultShardCount if <= 0).
func New(shardCount int) *Store {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	s := &Store{
		shards: make([]*shard, shardCount),
		seed:   maphash.MakeSeed(),
	}
	for i := range s.shards {
		s.shards[i] = &shard{data: make(map[string]Value)}
	}
	return s
}

// ShardCount returns the number of shards.
func (s *Store) ShardCount() int { return len(s.shards) }

// shardIndex returns the shard index for key under this Store's
// process-seeded hash.
func (s *Store) shardIndex(key []byte) int {
	var h maphash.Hash
	h.SetSeed(s.seed)
	h.Write(key)
	return int(h.Sum64() % uint64(len(s.shards)))
}

// ShardIndex exposes shardIndex for WATCH: the session dispatcher records
// (ShardIndex(key), ShardVersion(idx)) pairs to later validate at EXEC.
func (s *Store) ShardIndex(key []byte) int { return s.shardIndex(key) }

// ShardVersion returns the current version counter of shard idx.
func (s *Store) ShardVersion(idx int) uint64 {
	sh := s.shards[idx]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.version
}

// mutate runs fn under the exclusive lease of key's shard. If fn reports
// that it observably changed the shard's contents, the shard's version is
// incremented.
func (s *Store) mutate(key []byte, fn func(sh *shard) bool) {
	sh := s.shards[s.shardIndex(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if fn(sh) {
		sh.version++
	}
}

// read runs fn under key's shard lease; read-only operations never bump
// the version counter.
func (s *Store) read(key []byte, fn func(sh *shard)) {
	sh := s.shards[s.shardIndex(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fn(sh)
}

// deleteIfEmpty removes key from sh if its Value is an emptied container,
// preserving the invariant that TYPE/EXISTS agree with type-specific ops
// after the last element is removed.
func deleteIfEmpty(sh *shard, key string, v Value) {
	switch t := v.(type) {
	case *listValue:
		if t.len() == 0 {
			delete(sh.data, key)
		}
	case setValue:
		if len(t) == 0 {
			delete(sh.data, key)
		}
	case hashValue:
		if len(t) == 0 {
			delete(sh.data, key)
		}
	case *zsetValue:
		if t.len() == 0 {
			delete(sh.data, key)
		}
	}
}

// Del removes key regardless of its family. It returns true if key was
// present.
func (s *Store) Del(key []byte) bool {
	var existed bool
	s.mutate(key, func(sh *shard) bool {
		_, existed = sh.data[string(key)]
		if existed {
			delete(sh.data, string(key))
		}
		return existed
	})
	return existed
}

// Exists reports whether key is present, regardless of family.
func (s *Store) Exists(key []byte) bool {
	var ok bool
	s.read(key, func(sh *shard) {
		_, ok = sh.data[string(key)]
	})
	return ok
}

// Type returns the family name of key's value, or "none" if absent.
func (s *Store) Type(key []byte) string {
	var name string
	s.read(key, func(sh *shard) {
		if v, ok := sh.data[string(key)]; ok {
			name = v.Kind().TypeName()
		} else {
			name = "none"
		}
	})
	return name
}

// TTL reports -2 if key is absent, -1 if present (no real TTL is tracked).
func (s *Store) TTL(key []byte) int64 {
	if s.Exists(key) {
		return -1
	}
	return -2
}

// PTTL mirrors TTL at millisecond resolution (still no real TTL tracked).
func (s *Store) PTTL(key []byte) int64 { return s.TTL(key) }

// Keys returns every key matching pattern ("*" matches everything, any
// other pattern matches by exact equality only — see spec.md §4.3).
func (s *Store) Keys(pattern string) [][]byte {
	var out [][]byte
	matchAll := pattern == "*"
	for _, sh := range s.shards {
		sh.mu.Lock()
		for k := range sh.data {
			if matchAll || k == pattern {
				out = append(out, []byte(k))
			}
		}
		sh.mu.Unlock()
	}
	return out
}

// DBSize sums the key count across all shards.
func (s *Store) DBSize() int64 {
	var n int64
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += int64(len(sh.data))
		sh.mu.Unlock()
	}
	return n
}

// FlushDB clears every shard, incrementing each shard's version.
func (s *Store) FlushDB() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		if len(sh.data) > 0 {
			sh.data = make(map[string]Value)
			sh.version++
		}
		sh.mu.Unlock()
	}
}
