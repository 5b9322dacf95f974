package store

import (
	"errors"
	"sync"
	"testing"
)

func b(s string) []byte { return []byte(s) }

func TestStringSetGetDel(t *testing.T) {
	s := New(8)
	if _, ok := s.Get(b("foo")); ok {
		t.Fatal("expected absent")
	}
	s.Set(b("foo"), b("bar"))
	v, ok := s.Get(b("foo"))
	if !ok || string(v) != "bar" {
		t.Fatalf("got %q %v", v, ok)
	}
	if !s.Del(b("foo")) {
		t.Fatal("expected deleted")
	}
	if _, ok := s.Get(b("foo")); ok {
		t.Fatal("expected absent after del")
	}
}

func TestSetOverwritesAnyPriorType(t *testing.T) {
	s := New(8)
	s.LPush(b("k"), b("a"))
	s.Set(b("k"), b("v"))
	v, ok := s.Get(b("k"))
	if !ok || string(v) != "v" {
		t.Fatalf("SET did not overwrite list: %q %v", v, ok)
	}
}

func TestIdempotentSet(t *testing.T) {
	s := New(8)
	s.Set(b("k"), b("v1"))
	for i := 0; i < 5; i++ {
		v, ok := s.Get(b("k"))
		if !ok || string(v) != "v1" {
			t.Fatalf("iteration %d: got %q %v", i, v, ok)
		}
	}
}

func TestHashBasic(t *testing.T) {
	s := New(8)
	created, err := s.HSet(b("h"), b("f1"), b("v1"))
	if err != nil || !created {
		t.Fatalf("want created, got %v %v", created, err)
	}
	created, err = s.HSet(b("h"), b("f2"), b("v2"))
	if err != nil || !created {
		t.Fatalf("want created, got %v %v", created, err)
	}
	n, err := s.HLen(b("h"))
	if err != nil || n != 2 {
		t.Fatalf("want len 2, got %d %v", n, err)
	}
	removed, err := s.HDel(b("h"), b("f1"))
	if err != nil || !removed {
		t.Fatalf("want removed, got %v %v", removed, err)
	}
	exists, err := s.HExists(b("h"), b("f1"))
	if err != nil || exists {
		t.Fatalf("want absent, got %v %v", exists, err)
	}
	if typ := s.Type(b("h")); typ != "hash" {
		t.Fatalf("want hash, got %s", typ)
	}
}

func TestHashEmptiedKeyRemoved(t *testing.T) {
	s := New(8)
	s.HSet(b("h"), b("f"), b("v"))
	s.HDel(b("h"), b("f"))
	if s.Exists(b("h")) {
		t.Fatal("expected key removed once hash emptied")
	}
	if typ := s.Type(b("h")); typ != "none" {
		t.Fatalf("want none, got %s", typ)
	}
}

func TestHSetReplaceReturnsZero(t *testing.T) {
	s := New(8)
	s.HSet(b("h"), b("f"), b("v1"))
	created, err := s.HSet(b("h"), b("f"), b("v2"))
	if err != nil || created {
		t.Fatalf("want replace (created=false), got %v %v", created, err)
	}
	v, _, _ := s.HGet(b("h"), b("f"))
	if string(v) != "v2" {
		t.Fatalf("want v2, got %q", v)
	}
}

func TestListPushPopRange(t *testing.T) {
	s := New(8)
	n, err := s.LPush(b("mylist"), b("a"))
	if err != nil || n != 1 {
		t.Fatalf("got %d %v", n, err)
	}
	n, err = s.LPush(b("mylist"), b("b"))
	if err != nil || n != 2 {
		t.Fatalf("got %d %v", n, err)
	}
	out, err := s.LRange(b("mylist"), 0, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || string(out[0]) != "b" || string(out[1]) != "a" {
		t.Fatalf("unexpected range: %v", stringify(out))
	}
	v, ok, err := s.RPop(b("mylist"))
	if err != nil || !ok || string(v) != "a" {
		t.Fatalf("got %q %v %v", v, ok, err)
	}
	out, _ = s.LRange(b("mylist"), 0, -1)
	if len(out) != 1 || string(out[0]) != "b" {
		t.Fatalf("unexpected range after pop: %v", stringify(out))
	}
}

func TestListEmptiedRemoved(t *testing.T) {
	s := New(8)
	s.RPush(b("l"), b("x"))
	s.LPop(b("l"))
	if s.Exists(b("l")) {
		t.Fatal("expected list key removed once emptied")
	}
}

func TestLRangeClampsOutOfRange(t *testing.T) {
	s := New(8)
	s.RPush(b("l"), b("a"), b("b"), b("c"))
	out, err := s.LRange(b("l"), -100, 100)
	if err != nil || len(out) != 3 {
		t.Fatalf("got %v %v", stringify(out), err)
	}
	out, err = s.LRange(b("l"), 2, 1)
	if err != nil || len(out) != 0 {
		t.Fatalf("want empty, got %v", stringify(out))
	}
}

func TestSetAddRemoveMembers(t *testing.T) {
	s := New(8)
	added, err := s.SAdd(b("s"), b("m1"))
	if err != nil || !added {
		t.Fatalf("got %v %v", added, err)
	}
	added, err = s.SAdd(b("s"), b("m1"))
	if err != nil || added {
		t.Fatalf("want not added (dup), got %v %v", added, err)
	}
	removed, err := s.SRem(b("s"), b("m1"))
	if err != nil || !removed {
		t.Fatalf("got %v %v", removed, err)
	}
	if s.Exists(b("s")) {
		t.Fatal("expected set removed once emptied")
	}
}

func TestZAddZRangeWithScores(t *testing.T) {
	s := New(8)
	added, err := s.ZAdd(b("z"), 1, b("a"))
	if err != nil || !added {
		t.Fatalf("got %v %v", added, err)
	}
	added, err = s.ZAdd(b("z"), 2, b("b"))
	if err != nil || !added {
		t.Fatalf("got %v %v", added, err)
	}
	out, err := s.ZRange(b("z"), 0, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || string(out[0].Member) != "a" || out[0].Score != 1 || string(out[1].Member) != "b" || out[1].Score != 2 {
		t.Fatalf("unexpected zrange: %+v", out)
	}
}

func TestZAddUpdateScoreReturnsFalse(t *testing.T) {
	s := New(8)
	s.ZAdd(b("z"), 1, b("a"))
	added, err := s.ZAdd(b("z"), 5, b("a"))
	if err != nil || added {
		t.Fatalf("want added=false on score update, got %v %v", added, err)
	}
	out, _ := s.ZRange(b("z"), 0, -1)
	if len(out) != 1 || out[0].Score != 5 {
		t.Fatalf("want updated score 5, got %+v", out)
	}
}

func TestWrongType(t *testing.T) {
	s := New(8)
	s.Set(b("k"), b("v"))
	if _, _, err := s.HGet(b("k"), b("f")); !errors.Is(err, ErrWrongType) {
		t.Fatalf("want ErrWrongType, got %v", err)
	}
	if _, err := s.SAdd(b("k"), b("m")); !errors.Is(err, ErrWrongType) {
		t.Fatalf("want ErrWrongType, got %v", err)
	}
}

func TestJSONRootPathOnly(t *testing.T) {
	s := New(8)
	if err := s.JSONSet(b("j"), "$", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	text, ok, err := s.JSONGet(b("j"), "$")
	if err != nil || !ok || string(text) != `{"a":1}` {
		t.Fatalf("got %q %v %v", text, ok, err)
	}
	_, ok, err = s.JSONGet(b("j"), "$.a")
	if err != nil || ok {
		t.Fatalf("non-root path should be silently null, got %v %v", ok, err)
	}
	if err := s.JSONSet(b("j"), "$.a", []byte(`2`)); !errors.Is(err, ErrJSONPath) {
		t.Fatalf("want ErrJSONPath, got %v", err)
	}
}

func TestJSONSetInvalidTextRejected(t *testing.T) {
	s := New(8)
	if err := s.JSONSet(b("j"), "$", []byte(`{not json`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("want ErrInvalidJSON, got %v", err)
	}
	if s.Exists(b("j")) {
		t.Fatal("a rejected JSONSet must not create the key")
	}
}

func TestJSONSetWrongTypeLeavesExistingValue(t *testing.T) {
	s := New(8)
	s.Set(b("k"), b("v"))
	if err := s.JSONSet(b("k"), "$", []byte(`{"a":1}`)); !errors.Is(err, ErrWrongType) {
		t.Fatalf("want ErrWrongType, got %v", err)
	}
	v, ok := s.Get(b("k"))
	if !ok || string(v) != "v" {
		t.Fatalf("existing string value must be left untouched, got %q %v", v, ok)
	}
}

func TestKeysPatternAndDBSizeAndFlush(t *testing.T) {
	s := New(8)
	s.Set(b("a"), b("1"))
	s.Set(b("b"), b("2"))
	if n := s.DBSize(); n != 2 {
		t.Fatalf("want 2, got %d", n)
	}
	all := s.Keys("*")
	if len(all) != 2 {
		t.Fatalf("want 2 keys, got %d", len(all))
	}
	exact := s.Keys("a")
	if len(exact) != 1 || string(exact[0]) != "a" {
		t.Fatalf("want [a], got %v", stringify(exact))
	}
	s.FlushDB()
	if n := s.DBSize(); n != 0 {
		t.Fatalf("want 0 after flush, got %d", n)
	}
}

func TestTTLAndType(t *testing.T) {
	s := New(8)
	if s.TTL(b("missing")) != -2 {
		t.Fatal("want -2 for absent key")
	}
	s.Set(b("k"), b("v"))
	if s.TTL(b("k")) != -1 {
		t.Fatal("want -1 for present key")
	}
	if s.Type(b("k")) != "string" {
		t.Fatal("want string type")
	}
}

// Shard commutativity: mutations to keys in different shards commute
// regardless of interleaving.
func TestShardCommutativity(t *testing.T) {
	s := New(64)
	var keyA, keyB []byte
	for i := 0; ; i++ {
		k := b(string(rune('a' + i)))
		if s.ShardIndex(k) == 0 {
			keyA = k
			break
		}
	}
	for i := 0; ; i++ {
		k := b(string(rune('A' + i)))
		if s.ShardIndex(k) == 1 {
			keyB = k
			break
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.RPush(keyA, b("x"))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.SAdd(keyB, b("y"))
		}
	}()
	wg.Wait()

	out, _ := s.LRange(keyA, 0, -1)
	if len(out) != 100 {
		t.Fatalf("want 100 elements in keyA's list, got %d", len(out))
	}
	members, _ := s.SMembers(keyB)
	if len(members) != 1 {
		t.Fatalf("want 1 member in keyB's set, got %d", len(members))
	}
}

func TestShardVersionIncrementsOnMutationOnly(t *testing.T) {
	s := New(8)
	idx := s.ShardIndex(b("k"))
	v0 := s.ShardVersion(idx)
	s.Exists(b("k"))
	if s.ShardVersion(idx) != v0 {
		t.Fatal("read-only op must not bump version")
	}
	s.Set(b("k"), b("v"))
	if s.ShardVersion(idx) <= v0 {
		t.Fatal("mutation must bump version")
	}
}

func stringify(bs [][]byte) []string {
	out := make([]string, len(bs))
	for i, x := range bs {
		out[i] = string(x)
	}
	return out
}
