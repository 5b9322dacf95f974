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

import (
	"io"
	"os"
	"path/filepath"
)

// LocalBackend stores snapshot objects as plain files in a directory, in
// the style of the teacher's storage.FileStorage: write to a temp file and
// rename into place, so a crash mid-write never leaves a half-written
// snapshot where a reader can see it.
type LocalBackend struct {
	Dir string
}

func (b LocalBackend) path(name string) string {
	return filepath.Join(b.Dir, name)
}

func (b LocalBackend) Write(name string, r io.Reader) error {
	if err := os.MkdirAll(b.Dir, 0o750); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.Dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, b.path(name))
}

func (b LocalBackend) Read(name string) (io.ReadCloser, error) {
	return os.Open(b.path(name))
}
