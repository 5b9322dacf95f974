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

// BackendConfig carries the settings any registered backend constructor
// might need; each constructor reads only the fields it cares about. It
// is the snapshot package's half of server/settings.Settings' snapshot
// fields.
type BackendConfig struct {
	LocalDir string
	S3       S3Config
	Ceph     CephConfig
}

// backendRegistry maps a configured backend name to a constructor. local
// and s3 are registered unconditionally below; ceph.go (built only with
// -tags ceph) and ceph_stub.go (its complement) each register "ceph" from
// their own init(), mirroring the teacher's storage.BackendRegistry
// pattern of optional, build-tag-gated persistence backends
// (persistence-ceph.go).
var backendRegistry = map[string]func(cfg BackendConfig) (Backend, error){}

func init() {
	backendRegistry["local"] = func(cfg BackendConfig) (Backend, error) {
		if cfg.LocalDir == "" {
			return nil, fmt.Errorf("snapshot: local backend requires a directory")
		}
		return LocalBackend{Dir: cfg.LocalDir}, nil
	}
	backendRegistry["s3"] = func(cfg BackendConfig) (Backend, error) {
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("snapshot: s3 backend requires a bucket")
		}
		return NewS3Backend(cfg.S3), nil
	}
}

// BackendByName builds the Backend registered under name, or an error if
// name is not registered. In a binary built without -tags ceph, "ceph" is
// registered by ceph_stub.go with a constructor that always returns an
// error.
func BackendByName(name string, cfg BackendConfig) (Backend, error) {
	if name == "" {
		name = "local"
	}
	ctor, ok := backendRegistry[name]
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown backend %q", name)
	}
	return ctor(cfg)
}
