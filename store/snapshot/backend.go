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

package snapshot

import "io"

// Backend stores and retrieves a single named snapshot object. It mirrors
// the shape of the teacher's storage.PersistenceEngine (ReadSchema /
// WriteSchema) narrowed to the one artifact a snapshot needs: there is no
// per-shard column/log split here, since a snapshot is one dump of the
// whole keyspace rather than memcp's columnar, logged storage.
type Backend interface {
	// Write stores the full contents read from r under name, replacing
	// any prior object of that name.
	Write(name string, r io.Reader) error
	// Read opens the object named name. It returns an error satisfying
	// errors.Is(err, os.ErrNotExist) when absent, so callers can treat a
	// missing snapshot as "start empty" rather than a hard failure.
	Read(name string) (io.ReadCloser, error)
}
