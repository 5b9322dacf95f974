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

// SAdd adds member to the set at key, creating the set if absent. It
// returns true if member was newly added.
func (s *Store) SAdd(key, member []byte) (added bool, err error) {
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		var set setValue
		if present {
			var isSet bool
			set, isSet = v.(setValue)
			if !isSet {
				err = ErrWrongType
				return false
			}
		} else {
			set = make(setValue)
			sh.data[string(key)] = set
		}
		if _, ok := set[string(member)]; ok {
			return false
		}
		set[string(member)] = append([]byte(nil), member...)
		added = true
		return true
	})
	return added, err
}

// SRem removes member from the set at key, deleting the key entirely if
// the set becomes empty. It returns true if member was present.
func (s *Store) SRem(key, member []byte) (removed bool, err error) {
	s.mutate(key, func(sh *shard) bool {
		v, present := sh.data[string(key)]
		if !present {
			return false
		}
		set, isSet := v.(setValue)
		if !isSet {
			err = ErrWrongType
			return false
		}
		if _, ok := set[string(member)]; !ok {
			return false
		}
		delete(set, string(member))
		removed = true
		deleteIfEmpty(sh, string(key), set)
		return true
	})
	return removed, err
}

// SMembers returns a snapshot of the set at key, in unspecified order.
func (s *Store) SMembers(key []byte) (members [][]byte, err error) {
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		set, isSet := v.(setValue)
		if !isSet {
			err = ErrWrongType
			return
		}
		for _, m := range set {
			members = append(members, append([]byte(nil), m...))
		}
	})
	return members, err
}
