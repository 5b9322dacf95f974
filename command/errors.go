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

// Package command parses a RESP array into a typed Command variant and
// applies it against a store.Store, writing its response through a
// resp.Conn.
package command

import (
	"errors"
	"fmt"
)

// ErrProtocol marks an error produced while parsing command arguments
// (wrong arity, non-UTF-8 text, unparsable integer/float). It is always
// surfaced as a RESP Error frame, never as a connection-fatal error.
var ErrProtocol = errors.New("ERR protocol error")

type protocolError struct{ msg string }

func (e *protocolError) Error() string { return e.msg }
func (e *protocolError) Unwrap() error { return ErrProtocol }

func protoErrf(format string, a ...any) error {
	return &protocolError{msg: "ERR " + fmt.Sprintf(format, a...)}
}
