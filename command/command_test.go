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

package command

import (
	"bytes"
	"net"
	"testing"

	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

func arrayOf(parts ...string) resp.Frame {
	items := make([]resp.Frame, len(parts))
	for i, p := range parts {
		items[i] = resp.BulkString(p)
	}
	return resp.Array(items...)
}

// pipeConn wires a resp.Conn to an in-memory net.Pipe peer so Apply's
// WriteFrame calls can be read back by the test.
func pipeConn(t *testing.T) (*resp.Conn, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() { server.Close(); client.Close() })
	return resp.NewConn(server), client
}

func readReply(t *testing.T, client net.Conn) resp.Frame {
	t.Helper()
	c := resp.NewConn(client)
	f, err := c.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	return f
}

func TestParseUnknownCommand(t *testing.T) {
	cmd, err := Parse(arrayOf("FROBNICATE", "x"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := cmd.(Unknown); !ok {
		t.Fatalf("expected Unknown, got %T", cmd)
	}
}

func TestParseArityErrors(t *testing.T) {
	cases := [][]string{
		{"GET"},
		{"GET", "a", "b"},
		{"SET", "a"},
		{"HSET", "k", "f"},
		{"LPUSH", "k"},
		{"ZADD", "k", "1"},
	}
	for _, c := range cases {
		if _, err := Parse(arrayOf(c...)); err == nil {
			t.Errorf("Parse(%v): expected arity error, got nil", c)
		}
	}
}

func TestDispatchGetSetDel(t *testing.T) {
	st := store.New(4)
	done := make(chan struct{})
	conn, client := pipeConn(t)

	go func() {
		defer close(done)
		cmd, err := Parse(arrayOf("SET", "k", "v"))
		if err != nil {
			t.Errorf("Parse SET: %v", err)
			return
		}
		if err := cmd.(Command).Apply(st, conn); err != nil {
			t.Errorf("Apply SET: %v", err)
		}
	}()
	reply := readReply(t, client)
	<-done
	if reply.Kind != resp.KindSimple || reply.Str != "OK" {
		t.Fatalf("SET reply = %+v", reply)
	}

	done = make(chan struct{})
	go func() {
		defer close(done)
		cmd, _ := Parse(arrayOf("GET", "k"))
		if err := cmd.(Command).Apply(st, conn); err != nil {
			t.Errorf("Apply GET: %v", err)
		}
	}()
	reply = readReply(t, client)
	<-done
	if reply.Kind != resp.KindBulk || !bytes.Equal(reply.Bulk, []byte("v")) {
		t.Fatalf("GET reply = %+v", reply)
	}

	done = make(chan struct{})
	go func() {
		defer close(done)
		cmd, _ := Parse(arrayOf("DEL", "k"))
		if err := cmd.(Command).Apply(st, conn); err != nil {
			t.Errorf("Apply DEL: %v", err)
		}
	}()
	reply = readReply(t, client)
	<-done
	if reply.Kind != resp.KindInteger || reply.Int != 1 {
		t.Fatalf("DEL reply = %+v", reply)
	}
}

func TestDispatchWrongType(t *testing.T) {
	st := store.New(4)
	st.Set([]byte("k"), []byte("v"))
	conn, client := pipeConn(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd, _ := Parse(arrayOf("HGET", "k", "f"))
		if err := cmd.(Command).Apply(st, conn); err != nil {
			t.Errorf("Apply HGET: %v", err)
		}
	}()
	reply := readReply(t, client)
	<-done
	if reply.Kind != resp.KindError {
		t.Fatalf("expected error reply, got %+v", reply)
	}
}

func TestZAddZRangeWithScores(t *testing.T) {
	st := store.New(4)
	conn, client := pipeConn(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd, err := Parse(arrayOf("ZADD", "z", "1", "a", "2", "b"))
		if err != nil {
			t.Errorf("Parse ZADD: %v", err)
			return
		}
		if err := cmd.(Command).Apply(st, conn); err != nil {
			t.Errorf("Apply ZADD: %v", err)
		}
	}()
	reply := readReply(t, client)
	<-done
	if reply.Kind != resp.KindInteger || reply.Int != 2 {
		t.Fatalf("ZADD reply = %+v", reply)
	}

	done = make(chan struct{})
	go func() {
		defer close(done)
		cmd, err := Parse(arrayOf("ZRANGE", "z", "0", "-1", "WITHSCORES"))
		if err != nil {
			t.Errorf("Parse ZRANGE: %v", err)
			return
		}
		if err := cmd.(Command).Apply(st, conn); err != nil {
			t.Errorf("Apply ZRANGE: %v", err)
		}
	}()
	reply = readReply(t, client)
	<-done
	if reply.Kind != resp.KindArray || len(reply.Array) != 4 {
		t.Fatalf("ZRANGE reply = %+v", reply)
	}
	if !bytes.Equal(reply.Array[0].Bulk, []byte("a")) || reply.Array[1].Bulk == nil {
		t.Fatalf("ZRANGE reply members/scores malformed: %+v", reply)
	}
}

func TestParseWatchRequiresKey(t *testing.T) {
	if _, err := Parse(arrayOf("WATCH")); err == nil {
		t.Fatal("expected error for WATCH with no keys")
	}
	cmd, err := Parse(arrayOf("WATCH", "a", "b"))
	if err != nil {
		t.Fatalf("Parse WATCH: %v", err)
	}
	w, ok := cmd.(Watch)
	if !ok || len(w.Keys) != 2 {
		t.Fatalf("Parse WATCH = %+v", cmd)
	}
}

func TestParseMultiExecDiscard(t *testing.T) {
	if cmd, err := Parse(arrayOf("MULTI")); err != nil {
		t.Fatalf("Parse MULTI: %v", err)
	} else if _, ok := cmd.(Multi); !ok {
		t.Fatalf("expected Multi, got %T", cmd)
	}
	if cmd, err := Parse(arrayOf("EXEC")); err != nil {
		t.Fatalf("Parse EXEC: %v", err)
	} else if _, ok := cmd.(Exec); !ok {
		t.Fatalf("expected Exec, got %T", cmd)
	}
	if cmd, err := Parse(arrayOf("DISCARD")); err != nil {
		t.Fatalf("Parse DISCARD: %v", err)
	} else if _, ok := cmd.(Discard); !ok {
		t.Fatalf("expected Discard, got %T", cmd)
	}
}
