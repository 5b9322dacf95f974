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

// redikv-server is the RESP-compatible key/value server: it binds the
// listener, restores the last snapshot (if any), and serves connections
// until interrupted.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dc0d/onexit"

	"github.com/rahulkeshervani/redikv/server"
	"github.com/rahulkeshervani/redikv/server/admin"
	"github.com/rahulkeshervani/redikv/server/settings"
	"github.com/rahulkeshervani/redikv/store/snapshot"
)

func main() {
	fmt.Print(`redikv Copyright (C) 2026  redikv contributors
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	configPath := flag.String("config", "", "path to a JSON config file (reloaded on change)")
	flag.Parse()

	cfg := settings.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Printf("redikv: failed to load %s: %v\n", *configPath, err)
			os.Exit(1)
		}
	}

	srv := server.New(cfg)

	var snapper *snapshot.Snapshotter
	if snapshotEnabled(cfg) {
		backend, err := snapshot.BackendByName(cfg.SnapshotBackend, backendConfig(cfg))
		if err != nil {
			fmt.Printf("redikv: snapshot backend: %v\n", err)
			os.Exit(1)
		}
		snapper, err = snapshot.New(srv.Store(), backend, cfg.SnapshotCodec)
		if err != nil {
			fmt.Printf("redikv: bad snapshot codec %q: %v\n", cfg.SnapshotCodec, err)
			os.Exit(1)
		}
		if err := snapper.Load(); err != nil {
			fmt.Printf("redikv: failed to restore snapshot: %v\n", err)
			os.Exit(1)
		}
	}

	stop := make(chan struct{})
	onexit.Register(func() { close(stop) })

	if snapper != nil && cfg.SnapshotInterval > 0 {
		go snapper.Run(time.Duration(cfg.SnapshotInterval)*time.Second, stop)
		onexit.Register(func() {
			if err := snapper.Save(); err != nil {
				fmt.Printf("redikv: final snapshot save failed: %v\n", err)
			}
		})
	}

	if *configPath != "" {
		if err := settings.WatchFile(cfg, *configPath, stop); err != nil {
			fmt.Printf("redikv: config watch disabled: %v\n", err)
		}
	}

	if cfg.AdminAddr != "" {
		adminSrv := &admin.Server{Store: srv.Store()}
		go func() {
			fmt.Printf("redikv admin listening on %s\n", cfg.AdminAddr)
			if err := http.ListenAndServe(cfg.AdminAddr, adminSrv.Mux()); err != nil {
				fmt.Printf("redikv: admin server stopped: %v\n", err)
			}
		}()
	}

	onexit.Register(func() { srv.Close() })

	if err := srv.ListenAndServe(); err != nil {
		fmt.Printf("redikv: %v\n", err)
		os.Exit(1)
	}
}

// snapshotEnabled reports whether cfg names enough to build the
// configured backend: a directory for "local", a bucket for "s3", a pool
// for "ceph". Snapshotting stays off by default, matching Default()'s
// empty SnapshotPath.
func snapshotEnabled(cfg *settings.Settings) bool {
	switch cfg.SnapshotBackend {
	case "", "local":
		return cfg.SnapshotPath != ""
	case "s3":
		return cfg.S3Bucket != ""
	case "ceph":
		return cfg.CephPool != ""
	default:
		return false
	}
}

// backendConfig narrows Settings down to the fields store/snapshot's
// registered backend constructors read.
func backendConfig(cfg *settings.Settings) snapshot.BackendConfig {
	return snapshot.BackendConfig{
		LocalDir: cfg.SnapshotPath,
		S3: snapshot.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			ForcePathStyle:  cfg.S3ForcePathStyle,
		},
		Ceph: snapshot.CephConfig{
			UserName:    cfg.CephUserName,
			ClusterName: cfg.CephClusterName,
			ConfFile:    cfg.CephConfFile,
			Pool:        cfg.CephPool,
			Prefix:      cfg.CephPrefix,
		},
	}
}
