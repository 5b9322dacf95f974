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

// Package resp implements the RESP wire protocol: frame types, the
// streaming codec and the buffered connection built on top of it.
package resp

import "fmt"

// Kind tags the shape a Frame holds.
type Kind byte

const (
	KindSimple Kind = iota
	KindError
	KindInteger
	KindBulk
	KindNull
	KindArray
)

// Frame is the sole unit of communication on the wire: a simple string, an
// error, a signed integer, an opaque bulk payload, null, or an ordered
// array of frames.
type Frame struct {
	Kind  Kind
	Str   string  // Simple, Error
	Int   int64   // Integer
	Bulk  []byte  // Bulk (nil slice is valid and distinct from KindNull)
	Array []Frame // Array
}

// Simple builds a Simple Frame, e.g. Simple("OK") encodes as "+OK\r\n".
func Simple(s string) Frame { return Frame{Kind: KindSimple, Str: s} }

// Err builds an Error Frame. Conventionally the text begins with an
// uppercase error-kind word ("ERR", "WRONGTYPE", ...).
func Err(s string) Frame { return Frame{Kind: KindError, Str: s} }

// Errf builds an Error Frame from a format string.
func Errf(format string, a ...any) Frame { return Err(fmt.Sprintf(format, a...)) }

// Int builds an Integer Frame.
func Int(n int64) Frame { return Frame{Kind: KindInteger, Int: n} }

// Bulk builds a Bulk Frame from a byte slice. A nil slice still encodes as
// an empty bulk ("$0\r\n\r\n"), never as Null — use Null() for that.
func Bulk(b []byte) Frame { return Frame{Kind: KindBulk, Bulk: b} }

// BulkString builds a Bulk Frame from a string.
func BulkString(s string) Frame { return Frame{Kind: KindBulk, Bulk: []byte(s)} }

// Null builds the Null Frame ("$-1\r\n").
func Null() Frame { return Frame{Kind: KindNull} }

// Array builds an Array Frame from the given elements.
func Array(items ...Frame) Frame { return Frame{Kind: KindArray, Array: items} }

// IsNull reports whether f is the Null frame.
func (f Frame) IsNull() bool { return f.Kind == KindNull }

// String renders a Frame for debugging; it is not the wire encoding.
func (f Frame) String() string {
	switch f.Kind {
	case KindSimple:
		return "+" + f.Str
	case KindError:
		return "-" + f.Str
	case KindInteger:
		return fmt.Sprintf(":%d", f.Int)
	case KindBulk:
		return fmt.Sprintf("$%q", f.Bulk)
	case KindNull:
		return "$-1"
	case KindArray:
		return fmt.Sprintf("*%d%v", len(f.Array), f.Array)
	default:
		return "?"
	}
}
