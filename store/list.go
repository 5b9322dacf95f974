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

// LPush prepends values (in argument order, so the last value ends up
// frontmost) to the list at key, creating it if absent, and returns the
// new length.
func (s *Store) LPush(key []byte, values ...[]byte) (n int, err error) {
	if len(values) == 0 {
		return 0, nil
	}
	s.mutate(key, func(sh *shard) bool {
		lv, ok := listFor(sh, key, &err)
		if err != nil {
			return false
		}
		if !ok {
			return false
		}
		for _, val := range values {
			lv.l.PushFront(append([]byte(nil), val...))
		}
		n = lv.len()
		return true
	})
	return n, err
}

// RPush appends values to the list at key, creating it if absent, and
// returns the new length.
func (s *Store) RPush(key []byte, values ...[]byte) (n int, err error) {
	if len(values) == 0 {
		return 0, nil
	}
	s.mutate(key, func(sh *shard) bool {
		lv, ok := listFor(sh, key, &err)
		if err != nil {
			return false
		}
		if !ok {
			return false
		}
		for _, val := range values {
			lv.l.PushBack(append([]byte(nil), val...))
		}
		n = lv.len()
		return true
	})
	return n, err
}

// listFor fetches (creating if absent) the *listValue at key, or reports
// ErrWrongType via errOut if it holds a different family.
func listFor(sh *shard, key []byte, errOut *error) (*listValue, bool) {
	v, present := sh.data[string(key)]
	if !present {
		lv := newListValue()
		sh.data[string(key)] = lv
		return lv, true
	}
	lv, isList := v.(*listValue)
	if !isList {
		*errOut = ErrWrongType
		return nil, false
	}
	return lv, true
}

// LPop removes and returns the frontmost element of the list at key,
// deleting the key if the list becomes empty.
func (s *Store) LPop(key []byte) (value []byte, ok bool, err error) {
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		if !present {
			return false
		}
		lv, isList := v.(*listValue)
		if !isList {
			err = ErrWrongType
			return false
		}
		front := lv.l.Front()
		if front == nil {
			return false
		}
		lv.l.Remove(front)
		value = front.Value.([]byte)
		ok = true
		deleteIfEmpty(sh, string(key), lv)
		return true
	})
	return value, ok, err
}

// RPop removes and returns the rearmost element of the list at key,
// deleting the key if the list becomes empty.
func (s *Store) RPop(key []byte) (value []byte, ok bool, err error) {
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		if !present {
			return false
		}
		lv, isList := v.(*listValue)
		if !isList {
			err = ErrWrongType
			return false
		}
		back := lv.l.Back()
		if back == nil {
			return false
		}
		lv.l.Remove(back)
		value = back.Value.([]byte)
		ok = true
		deleteIfEmpty(sh, string(key), lv)
		return true
	})
	return value, ok, err
}

// LRange returns the inclusive slice [start,stop] of the list at key, with
// Python-style negative indexing (-1 = last element). Out-of-range indices
// clamp to the nearest valid boundary; start > stop after resolution
// yields an empty result.
func (s *Store) LRange(key []byte, start, stop int64) (out [][]byte, err error) {
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		lv, isList := v.(*listValue)
		if !isList {
			err = ErrWrongType
			return
		}
		items := lv.slice()
		lo, hi, ok := resolveRange(start, stop, len(items))
		if !ok {
			return
		}
		out = make([][]byte, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			out = append(out, append([]byte(nil), items[i]...))
		}
	})
	return out, err
}

// resolveRange converts Redis-style (possibly negative, possibly
// out-of-range) start/stop indices into clamped [lo,hi] inclusive bounds
// over a sequence of length n. ok is false when the resolved range is
// empty.
func resolveRange(start, stop int64, n int) (lo, hi int, ok bool) {
	if n == 0 {
		return 0, 0, false
	}
	norm := func(i int64) int64 {
		if i < 0 {
			i += int64(n)
		}
		if i < 0 {
			i = 0
		}
		if i > int64(n)-1 {
			i = int64(n) - 1
		}
		return i
	}
	s2 := start
	if s2 < 0 {
		s2 += int64(n)
		if s2 < 0 {
			s2 = 0
		}
	}
	e2 := norm(stop)
	if s2 > int64(n)-1 {
		return 0, 0, false
	}
	if s2 > e2 {
		return 0, 0, false
	}
	return int(s2), int(e2), true
}
