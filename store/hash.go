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

// HSet creates an empty hash at key if absent, then sets field to value.
// It returns true if the field was newly created, false if it replaced an
// existing field.
func (s *Store) HSet(key, field, value []byte) (created bool, err error) {
	stored := append([]byte(nil), value...)
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		var h hashValue
		if present {
			var isHash bool
			h, isHash = v.(hashValue)
			if !isHash {
				err = ErrWrongType
				return false
			}
		} else {
			h = make(hashValue)
			sh.data[string(key)] = h
		}
		_, existed := h[string(field)]
		h[string(field)] = stored
		created = !existed
		return true
	})
	return created, err
}

// HGet returns the value of field in the hash at key.
func (s *Store) HGet(key, field []byte) (value []byte, ok bool, err error) {
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		h, isHash := v.(hashValue)
		if !isHash {
			err = ErrWrongType
			return
		}
		if fv, fok := h[string(field)]; fok {
			value = append([]byte(nil), fv...)
			ok = true
		}
	})
	return value, ok, err
}

// HDel removes field from the hash at key, deleting the key entirely if
// the hash becomes empty. It returns true if the field was present.
func (s *Store) HDel(key, field []byte) (removed bool, err error) {
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		if !present {
			return false
		}
		h, isHash := v.(hashValue)
		if !isHash {
			err = ErrWrongType
			return false
		}
		if _, ok := h[string(field)]; !ok {
			return false
		}
		delete(h, string(field))
		removed = true
		deleteIfEmpty(sh, string(key), h)
		return true
	})
	return removed, err
}

// HExists reports whether field is present in the hash at key.
func (s *Store) HExists(key, field []byte) (bool, error) {
	_, ok, err := s.HGet(key, field)
	return ok, err
}

// HGetAll returns a snapshot of all field/value pairs in the hash at key.
func (s *Store) HGetAll(key []byte) (fields, values [][]byte, err error) {
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		h, isHash := v.(hashValue)
		if !isHash {
			err = ErrWrongType
			return
		}
		for f, val := range h {
			fields = append(fields, []byte(f))
			values = append(values, append([]byte(nil), val...))
		}
	})
	return fields, values, err
}

// HKeys returns a snapshot of the hash's field names.
func (s *Store) HKeys(key []byte) ([][]byte, error) {
	fields, _, err := s.HGetAll(key)
	return fields, err
}

// HVals returns a snapshot of the hash's values.
func (s *Store) HVals(key []byte) ([][]byte, error) {
	_, values, err := s.HGetAll(key)
	return values, err
}

// HLen returns the number of fields in the hash at key.
func (s *Store) HLen(key []byte) (n int, err error) {
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		h, isHash := v.(hashValue)
		if !isHash {
			err = ErrWrongType
			return
		}
		n = len(h)
	})
	return n, err
}
