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

import "github.com/google/btree"

// zsetItem is one (score, member) pair ordered by ascending score, ties
// broken by member bytes for a deterministic (if otherwise unspecified)
// iteration order — see spec.md §4.3's ZRANGE note.
type zsetItem struct {
	score  float64
	member string
}

func zsetLess(a, b zsetItem) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.member < b.member
}

// zsetValue keeps a score-ordered google/btree index alongside a
// member->score map for O(log n) score lookups and updates, mirroring the
// teacher's delta-index use of btree.BTreeG in storage/index.go.
type zsetValue struct {
	scores map[string]float64
	tree   *btree.BTreeG[zsetItem]
}

func newZSetValue() *zsetValue {
	return &zsetValue{
		scores: make(map[string]float64),
		tree:   btree.NewG(8, zsetLess),
	}
}

func (*zsetValue) Kind() Kind { return KindZSet }

func (v *zsetValue) len() int { return len(v.scores) }

// set inserts or updates member's score, returning true if member is new.
func (v *zsetValue) set(member string, score float64) bool {
	if old, ok := v.scores[member]; ok {
		if old != score {
			v.tree.Delete(zsetItem{score: old, member: member})
			v.tree.ReplaceOrInsert(zsetItem{score: score, member: member})
			v.scores[member] = score
		}
		return false
	}
	v.scores[member] = score
	v.tree.ReplaceOrInsert(zsetItem{score: score, member: member})
	return true
}

// ascending returns all (member, score) pairs ordered by ascending score.
func (v *zsetValue) ascending() []zsetItem {
	out := make([]zsetItem, 0, v.tree.Len())
	v.tree.Ascend(func(item zsetItem) bool {
		out = append(out, item)
		return true
	})
	return out
}

// ZAdd inserts or updates member's score in the sorted set at key,
// creating the set if absent. It returns true only when member did not
// previously exist.
func (s *Store) ZAdd(key []byte, score float64, member []byte) (added bool, err error) {
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		var zv *zsetValue
		if present {
			var isZSet bool
			zv, isZSet = v.(*zsetValue)
			if !isZSet {
				err = ErrWrongType
				return false
			}
		} else {
			zv = newZSetValue()
			sh.data[string(key)] = zv
		}
		added = zv.set(string(member), score)
		return true
	})
	return added, err
}

// ZRangeItem is one member of a ZRANGE result, carrying its score so the
// command layer can format WITHSCORES output.
type ZRangeItem struct {
	Member []byte
	Score  float64
}

// ZRange returns the members in [start,stop] (inclusive, Python-style
// negative indexing, like LRange) ordered by ascending score.
func (s *Store) ZRange(key []byte, start, stop int64) (out []ZRangeItem, err error) {
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		zv, isZSet := v.(*zsetValue)
		if !isZSet {
			err = ErrWrongType
			return
		}
		items := zv.ascending()
		lo, hi, ok := resolveRange(start, stop, len(items))
		if !ok {
			return
		}
		out = make([]ZRangeItem, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			out = append(out, ZRangeItem{
				Member: []byte(items[i].member),
				Score:  items[i].score,
			})
		}
	})
	return out, err
}
