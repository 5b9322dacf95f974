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

// CephConfig names the RADOS pool a CephBackend writes its snapshot
// object into, narrowed from the teacher's storage.CephFactory. It has no
// build tag so cmd/redikv-server can build it from its settings (and pass
// it through BackendConfig) regardless of whether the binary was built
// with the ceph tag; only CephBackend itself (ceph.go) requires -tags ceph.
type CephConfig struct {
	UserName    string
	ClusterName string
	ConfFile    string
	Pool        string
	Prefix      string
}
