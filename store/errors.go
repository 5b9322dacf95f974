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

// Package store implements the sharded concurrent in-memory key-value
// store: one mapping from key bytes to a typed Value per shard, a
// per-shard version counter, and the per-family operations described in
// the command set.
package store

import "errors"

// ErrWrongType is returned when an operation addresses a key whose stored
// value belongs to a different family than the operation requires.
var ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")

// ErrJSONPath is returned by JSON operations on any path other than the
// root ("$" or ".") — only the root path is implemented.
var ErrJSONPath = errors.New("only root path supported")

// ErrInvalidJSON is returned by JSONSet when text does not parse as JSON,
// matching the original implementation's exact "ERR invalid json" reply
// (cmd.rs) rather than leaking the underlying encoding/json error text.
var ErrInvalidJSON = errors.New("ERR invalid json")
