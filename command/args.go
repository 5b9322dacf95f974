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
	"strconv"
	"unicode/utf8"

	"github.com/rahulkeshervani/redikv/resp"
)

// argReader walks the frame-array tail following a command name, the way
// spec.md §4.4 describes: next_bytes/next_string/next_int accept either
// the frame kind a real client would send (Bulk) or the kinds an inline
// command produces, and finish asserts no trailing elements remain.
type argReader struct {
	frames []resp.Frame
	pos    int
}

func newArgReader(frames []resp.Frame) *argReader {
	return &argReader{frames: frames}
}

func (r *argReader) len() int { return len(r.frames) - r.pos }

func (r *argReader) peek() (resp.Frame, bool) {
	if r.pos >= len(r.frames) {
		return resp.Frame{}, false
	}
	return r.frames[r.pos], true
}

// nextBytes accepts Bulk (zero-copy) or Simple (converted).
func (r *argReader) nextBytes() ([]byte, error) {
	f, ok := r.peek()
	if !ok {
		return nil, protoErrf("wrong number of arguments")
	}
	r.pos++
	switch f.Kind {
	case resp.KindBulk:
		return f.Bulk, nil
	case resp.KindSimple:
		return []byte(f.Str), nil
	default:
		return nil, protoErrf("expected a bulk or simple string argument")
	}
}

// nextString additionally enforces UTF-8.
func (r *argReader) nextString() (string, error) {
	b, err := r.nextBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", protoErrf("argument is not valid UTF-8")
	}
	return string(b), nil
}

// nextInt accepts Integer frames or decimal-text Bulk/Simple.
func (r *argReader) nextInt() (int64, error) {
	f, ok := r.peek()
	if !ok {
		return 0, protoErrf("wrong number of arguments")
	}
	if f.Kind == resp.KindInteger {
		r.pos++
		return f.Int, nil
	}
	s, err := r.nextString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, protoErrf("value is not an integer or out of range")
	}
	return v, nil
}

// nextFloat accepts decimal-text Bulk/Simple (ZADD scores).
func (r *argReader) nextFloat() (float64, error) {
	s, err := r.nextString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, protoErrf("value is not a valid float")
	}
	return v, nil
}

// peekUpper returns the next token upper-cased without consuming it, for
// option-flag lookahead (WITHSCORES, MATCH, COUNT, ...). ok is false at
// end of input.
func (r *argReader) peekUpper() (string, bool) {
	f, ok := r.peek()
	if !ok {
		return "", false
	}
	var raw []byte
	switch f.Kind {
	case resp.KindBulk:
		raw = f.Bulk
	case resp.KindSimple:
		raw = []byte(f.Str)
	default:
		return "", false
	}
	return upperASCII(string(raw)), true
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// finish asserts no trailing elements remain.
func (r *argReader) finish() error {
	if r.len() != 0 {
		return protoErrf("wrong number of arguments")
	}
	return nil
}
