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

package session

import (
	"net"
	"testing"

	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

// newClient spins up a Session on one end of a net.Pipe, serving it in the
// background, and returns a resp.Conn bound to the other end.
func newClient(t *testing.T, st *store.Store, lease *Lease) *resp.Conn {
	t.Helper()
	server, client := net.Pipe()
	sess := New(st, lease, resp.NewConn(server))
	go sess.Serve()
	t.Cleanup(func() { client.Close() })
	return resp.NewConn(client)
}

func sendArray(t *testing.T, c *resp.Conn, parts ...string) {
	t.Helper()
	items := make([]resp.Frame, len(parts))
	for i, p := range parts {
		items[i] = resp.BulkString(p)
	}
	if err := c.WriteFrame(resp.Array(items...)); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
}

func expect(t *testing.T, c *resp.Conn, want resp.Frame) resp.Frame {
	t.Helper()
	got, err := c.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if got.Kind != want.Kind {
		t.Fatalf("reply kind = %v, want %v (got %+v)", got.Kind, want.Kind, got)
	}
	return got
}

func TestMultiExecBasic(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "MULTI")
	r := expect(t, c, resp.Simple("OK"))
	if r.Str != "OK" {
		t.Fatalf("MULTI reply = %+v", r)
	}

	sendArray(t, c, "SET", "k", "1")
	r = expect(t, c, resp.Simple("QUEUED"))
	if r.Str != "QUEUED" {
		t.Fatalf("queued SET reply = %+v", r)
	}

	sendArray(t, c, "SET", "k", "2")
	expect(t, c, resp.Simple("QUEUED"))

	sendArray(t, c, "EXEC")
	r = expect(t, c, resp.Array())
	if len(r.Array) != 2 {
		t.Fatalf("EXEC array len = %d, want 2", len(r.Array))
	}
	for _, item := range r.Array {
		if item.Kind != resp.KindSimple || item.Str != "OK" {
			t.Fatalf("EXEC item = %+v", item)
		}
	}
}

func TestExecWithoutMultiErrors(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "EXEC")
	expect(t, c, resp.Err("ERR EXEC without MULTI"))
}

func TestDiscardWithoutMultiErrors(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "DISCARD")
	expect(t, c, resp.Err("ERR DISCARD without MULTI"))
}

func TestNestedMultiErrors(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "MULTI")
	expect(t, c, resp.Simple("OK"))
	sendArray(t, c, "MULTI")
	expect(t, c, resp.Err("ERR MULTI calls can not be nested"))
}

func TestWatchInsideMultiErrors(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "MULTI")
	expect(t, c, resp.Simple("OK"))
	sendArray(t, c, "WATCH", "k")
	expect(t, c, resp.Err("ERR WATCH inside MULTI is not allowed"))
}

func TestDiscardClearsQueueAndWatches(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "WATCH", "k")
	expect(t, c, resp.Simple("OK"))
	sendArray(t, c, "MULTI")
	expect(t, c, resp.Simple("OK"))
	sendArray(t, c, "SET", "k", "1")
	expect(t, c, resp.Simple("QUEUED"))
	sendArray(t, c, "DISCARD")
	expect(t, c, resp.Simple("OK"))

	// k must never have been written.
	sendArray(t, c, "GET", "k")
	expect(t, c, resp.Null())

	// the queue is gone, so a bare EXEC now errors again.
	sendArray(t, c, "EXEC")
	expect(t, c, resp.Err("ERR EXEC without MULTI"))

	// the watch on k is gone too: changing k no longer aborts a new EXEC.
	sendArray(t, c, "SET", "k", "x")
	expect(t, c, resp.Simple("OK"))
	sendArray(t, c, "MULTI")
	expect(t, c, resp.Simple("OK"))
	sendArray(t, c, "EXEC")
	r := expect(t, c, resp.Array())
	if len(r.Array) != 0 {
		t.Fatalf("EXEC array len = %d, want 0", len(r.Array))
	}
}

// TestScenarioMultiExecVisibility is spec.md §8 scenario 5: a concurrent
// observer sees nil before EXEC and the final value after EXEC's ack, never
// an intermediate value.
func TestScenarioMultiExecVisibility(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	connA := newClient(t, st, lease)
	connB := newClient(t, st, lease)

	sendArray(t, connA, "MULTI")
	expect(t, connA, resp.Simple("OK"))
	sendArray(t, connA, "SET", "k", "1")
	expect(t, connA, resp.Simple("QUEUED"))
	sendArray(t, connA, "SET", "k", "2")
	expect(t, connA, resp.Simple("QUEUED"))

	sendArray(t, connB, "GET", "k")
	expect(t, connB, resp.Null())

	sendArray(t, connA, "EXEC")
	r := expect(t, connA, resp.Array())
	if len(r.Array) != 2 {
		t.Fatalf("EXEC array len = %d, want 2", len(r.Array))
	}

	sendArray(t, connB, "GET", "k")
	got := expect(t, connB, resp.Bulk(nil))
	if string(got.Bulk) != "2" {
		t.Fatalf("GET k after EXEC = %q, want 2", got.Bulk)
	}
}

// TestScenarioWatchInvalidation is spec.md §8 scenario 6.
func TestScenarioWatchInvalidation(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	connA := newClient(t, st, lease)
	connB := newClient(t, st, lease)

	sendArray(t, connA, "WATCH", "k")
	expect(t, connA, resp.Simple("OK"))

	sendArray(t, connB, "SET", "k", "x")
	expect(t, connB, resp.Simple("OK"))

	sendArray(t, connA, "MULTI")
	expect(t, connA, resp.Simple("OK"))
	sendArray(t, connA, "SET", "k", "y")
	expect(t, connA, resp.Simple("QUEUED"))
	sendArray(t, connA, "EXEC")
	expect(t, connA, resp.Null())

	sendArray(t, connB, "GET", "k")
	got := expect(t, connB, resp.Bulk(nil))
	if string(got.Bulk) != "x" {
		t.Fatalf("GET k after aborted EXEC = %q, want x", got.Bulk)
	}
}

func TestDirtyTransactionAborts(t *testing.T) {
	st := store.New(8)
	lease := NewLease()
	c := newClient(t, st, lease)

	sendArray(t, c, "MULTI")
	expect(t, c, resp.Simple("OK"))

	// HSET with the wrong arity is a parse error, not a WRONGTYPE error —
	// it marks the transaction dirty per spec.md §4.5.
	sendArray(t, c, "HSET", "h", "f")
	if got, err := c.ReadFrame(); err != nil || got.Kind != resp.KindError {
		t.Fatalf("bad HSET reply = %+v, err=%v", got, err)
	}

	sendArray(t, c, "SET", "k", "v")
	expect(t, c, resp.Simple("QUEUED"))

	sendArray(t, c, "EXEC")
	r := expect(t, c, resp.Err("EXECABORT"))
	if r.Str != "EXECABORT Transaction discarded because of previous errors." {
		t.Fatalf("EXEC reply = %+v", r)
	}

	sendArray(t, c, "GET", "k")
	expect(t, c, resp.Null())
}
