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
	"encoding/json"
	"fmt"
	"io"
)

// dumpRecord is the on-disk shape of one key, written as newline-delimited
// JSON (one record per line) in the teacher's persistence-files.go style of
// a plain readable schema.json rather than a binary format.
type dumpRecord struct {
	Key  string            `json:"key"`
	Kind Kind              `json:"kind"`
	Str  []byte            `json:"str,omitempty"`
	List [][]byte          `json:"list,omitempty"`
	Set  [][]byte          `json:"set,omitempty"`
	Hash map[string][]byte `json:"hash,omitempty"`
	ZSet []zsetDumpItem    `json:"zset,omitempty"`
	JSON []byte            `json:"json,omitempty"`
}

type zsetDumpItem struct {
	Member []byte  `json:"member"`
	Score  float64 `json:"score"`
}

// Dump serializes every key across every shard to w as newline-delimited
// JSON. It takes each shard's lock in turn rather than a single global
// lock, so Dump is not a point-in-time snapshot across the whole keyspace —
// it is consistent per shard only (acceptable for the periodic,
// best-effort snapshotting this supports; see DESIGN.md).
func (s *Store) Dump(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, sh := range s.shards {
		sh.mu.Lock()
		err := func() error {
			defer sh.mu.Unlock()
			for key, v := range sh.data {
				rec, err := encodeRecord(key, v)
				if err != nil {
					return err
				}
				if err := enc.Encode(rec); err != nil {
					return err
				}
			}
			return nil
		}()
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeRecord(key string, v Value) (dumpRecord, error) {
	rec := dumpRecord{Key: key, Kind: v.Kind()}
	switch t := v.(type) {
	case stringValue:
		rec.Str = []byte(t)
	case *listValue:
		rec.List = t.slice()
	case setValue:
		rec.Set = make([][]byte, 0, len(t))
		for _, member := range t {
			rec.Set = append(rec.Set, member)
		}
	case hashValue:
		rec.Hash = map[string][]byte(t)
	case *zsetValue:
		for _, item := range t.ascending() {
			rec.ZSet = append(rec.ZSet, zsetDumpItem{
				Member: []byte(item.member),
				Score:  item.score,
			})
		}
	case *jsonValue:
		rec.JSON = t.raw
	default:
		return dumpRecord{}, fmt.Errorf("store: unknown value kind %T", v)
	}
	return rec, nil
}

// Load replaces the Store's contents with the records decoded from r,
// clearing every shard first. It is meant to run once, at startup, before
// the listener accepts connections — it is not safe to call concurrently
// with live traffic.
func (s *Store) Load(r io.Reader) error {
	s.FlushDB()
	dec := json.NewDecoder(r)
	for dec.More() {
		var rec dumpRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		v, err := decodeRecord(rec)
		if err != nil {
			return err
		}
		key := []byte(rec.Key)
		s.mutate(key, func(sh *shard) bool {
			sh.data[rec.Key] = v
			return true
		})
	}
	return nil
}

func decodeRecord(rec dumpRecord) (Value, error) {
	switch rec.Kind {
	case KindString:
		return stringValue(append([]byte(nil), rec.Str...)), nil
	case KindList:
		lv := newListValue()
		for _, elem := range rec.List {
			lv.l.PushBack(append([]byte(nil), elem...))
		}
		return lv, nil
	case KindSet:
		sv := make(setValue, len(rec.Set))
		for _, member := range rec.Set {
			sv[string(member)] = append([]byte(nil), member...)
		}
		return sv, nil
	case KindHash:
		hv := make(hashValue, len(rec.Hash))
		for field, value := range rec.Hash {
			hv[field] = append([]byte(nil), value...)
		}
		return hv, nil
	case KindZSet:
		zv := newZSetValue()
		for _, item := range rec.ZSet {
			zv.set(string(item.Member), item.Score)
		}
		return zv, nil
	case KindJSON:
		return &jsonValue{raw: append([]byte(nil), rec.JSON...)}, nil
	default:
		return nil, fmt.Errorf("store: unknown dump kind %d for key %q", rec.Kind, rec.Key)
	}
}
