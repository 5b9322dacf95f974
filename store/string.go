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

// Get returns the bytes stored at key, or (nil, false) if key is absent or
// holds a value of a different family (GET only succeeds on String).
func (s *Store) Get(key []byte) ([]byte, bool) {
	var out []byte
	var ok bool
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		if sv, isString := v.(stringValue); isString {
			out = append([]byte(nil), sv...)
			ok = true
		}
	})
	return out, ok
}

// Set unconditionally overwrites key with value, regardless of any prior
// value's family.
func (s *Store) Set(key, value []byte) {
	stored := append([]byte(nil), value...)
	s.mutate(key, func(sh *shard) bool {
		sh.data[string(key)] = stringValue(stored)
		return true
	})
}
