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

import "encoding/json"

// isRootPath reports whether path addresses the whole document — the only
// path this store implements (see spec.md §4.3, §9 open question).
func isRootPath(path string) bool {
	return path == "$" || path == "."
}

// JSONSet replaces the entire JSON document at key with the document
// encoded in text, when path is the root path. Any other path returns
// ErrJSONPath. text must be valid JSON, or ErrInvalidJSON is returned; it
// is re-marshaled to its canonical compact form. A key already holding a
// non-JSON value is left untouched and reports ErrWrongType, matching the
// original implementation's behavior (cmd.rs) rather than clobbering it.
func (s *Store) JSONSet(key []byte, path string, text []byte) (err error) {
	if !isRootPath(path) {
		return ErrJSONPath
	}
	var decoded any
	if uerr := json.Unmarshal(text, &decoded); uerr != nil {
		return ErrInvalidJSON
	}
	canonical, merr := json.Marshal(decoded)
	if merr != nil {
		return ErrInvalidJSON
	}
	s.mutate(key, func(sh *shard) bool {
		if v, present := sh.data[string(key)]; present {
			if _, isJSON := v.(*jsonValue); !isJSON {
				err = ErrWrongType
				return false
			}
		}
		sh.data[string(key)] = &jsonValue{raw: canonical}
		return true
	})
	return err
}

// JSONGet returns the canonical textual serialization of the document at
// key, for the root path. Any other path returns (nil, false, nil) —
// silently null, matching spec.md §9's preserved ambiguity. A wrong-family
// key returns ErrWrongType.
func (s *Store) JSONGet(key []byte, path string) (text []byte, ok bool, err error) {
	if !isRootPath(path) {
		return nil, false, nil
	}
	s.read(key, func(sh *shard) {
		v, present := sh.data[string(key)]
		if !present {
			return
		}
		jv, isJSON := v.(*jsonValue)
		if !isJSON {
			err = ErrWrongType
			return
		}
		text = append([]byte(nil), jv.raw...)
		ok = true
	})
	return text, ok, err
}
