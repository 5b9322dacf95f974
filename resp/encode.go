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

package resp

import (
	"strconv"
)

// Encode appends the wire encoding of f to dst and returns the extended
// slice. Array frames are written depth-first.
func Encode(dst []byte, f Frame) []byte {
	switch f.Kind {
	case KindSimple:
		dst = append(dst, '+')
		dst = append(dst, f.Str...)
		return appendCRLF(dst)
	case KindError:
		dst = append(dst, '-')
		dst = append(dst, f.Str...)
		return appendCRLF(dst)
	case KindInteger:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, f.Int, 10)
		return appendCRLF(dst)
	case KindBulk:
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(f.Bulk)), 10)
		dst = appendCRLF(dst)
		dst = append(dst, f.Bulk...)
		return appendCRLF(dst)
	case KindNull:
		return append(dst, '$', '-', '1', '\r', '\n')
	case KindArray:
		dst = AppendArrayHeader(dst, len(f.Array))
		for _, item := range f.Array {
			dst = Encode(dst, item)
		}
		return dst
	default:
		panic("resp: unknown frame kind")
	}
}

// AppendArrayHeader appends just "*N\r\n" without any elements, enabling a
// caller to stream the elements individually (used by EXEC to avoid
// materializing the whole result vector).
func AppendArrayHeader(dst []byte, n int) []byte {
	dst = append(dst, '*')
	dst = strconv.AppendInt(dst, int64(n), 10)
	return appendCRLF(dst)
}

func appendCRLF(dst []byte) []byte {
	return append(dst, '\r', '\n')
}
