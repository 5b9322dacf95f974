//go:build !ceph

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

import "fmt"

// Plain builds (no -tags ceph) still register the "ceph" backend name so
// BackendByName gives a clear error instead of "unknown backend", rather
// than linking github.com/ceph/go-ceph (and librados) into every binary.
func init() {
	backendRegistry["ceph"] = func(cfg BackendConfig) (Backend, error) {
		return nil, fmt.Errorf("snapshot: ceph backend requires building with -tags ceph")
	}
}
