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

// Package settings holds the flat, JSON-file-backed configuration struct
// shared by the whole process, in the style of the teacher's
// storage.SettingsT: a single struct with sane defaults, reloadable in
// place.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"
)

// Settings is the live, process-wide configuration. Admin and server read
// it directly; WatchFile (through LoadFile) mutates the fields in place under mu on
// reload so readers never observe a torn struct mix of old/new fields for
// any single field (field writes are not individually atomic across
// fields, matching spec.md §9's scope: config reload is best-effort, not
// transactional across fields).
type Settings struct {
	mu sync.RWMutex

	ListenAddr   string
	AdminAddr    string
	ShardCount   int
	MaxFrameSize int64

	SnapshotPath     string
	SnapshotInterval int // seconds; 0 disables periodic snapshotting
	SnapshotCodec    string

	// SnapshotBackend selects where the snapshot object lives: "local"
	// (default, SnapshotPath is a directory), "s3", or "ceph" (only in
	// binaries built with -tags ceph). Each backend reads only its own
	// fields below, mirroring store/snapshot.BackendConfig.
	SnapshotBackend string

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Prefix          string
	S3ForcePathStyle  bool

	CephUserName    string
	CephClusterName string
	CephConfFile    string
	CephPool        string
	CephPrefix      string
}

// Default returns the out-of-the-box configuration: RESP on the
// conventional Redis port, a modest shard count, and snapshotting
// disabled.
func Default() *Settings {
	return &Settings{
		ListenAddr:       "127.0.0.1:6379",
		AdminAddr:        "127.0.0.1:6380",
		ShardCount:       64,
		MaxFrameSize:     512 << 20,
		SnapshotPath:     "",
		SnapshotInterval: 0,
		SnapshotCodec:    "lz4",
		SnapshotBackend:  "local",
	}
}

// fileConfig mirrors Settings' JSON-reloadable subset. ShardCount is
// intentionally absent: it sizes the store at construction time and
// cannot be changed after New (spec.md §4.3).
type fileConfig struct {
	ListenAddr       string `json:"listen_addr"`
	AdminAddr        string `json:"admin_addr"`
	MaxFrameSize     string `json:"max_frame_size"`
	SnapshotPath     string `json:"snapshot_path"`
	SnapshotInterval int    `json:"snapshot_interval_seconds"`
	SnapshotCodec    string `json:"snapshot_codec"`
	SnapshotBackend  string `json:"snapshot_backend"`

	S3Bucket          string `json:"s3_bucket"`
	S3Region          string `json:"s3_region"`
	S3Endpoint        string `json:"s3_endpoint"`
	S3AccessKeyID     string `json:"s3_access_key_id"`
	S3SecretAccessKey string `json:"s3_secret_access_key"`
	S3Prefix          string `json:"s3_prefix"`
	S3ForcePathStyle  bool   `json:"s3_force_path_style"`

	CephUserName    string `json:"ceph_username"`
	CephClusterName string `json:"ceph_cluster"`
	CephConfFile    string `json:"ceph_conf_file"`
	CephPool        string `json:"ceph_pool"`
	CephPrefix      string `json:"ceph_prefix"`
}

// LoadFile parses a JSON config file and applies it in place.
func (s *Settings) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	var maxFrame int64
	if fc.MaxFrameSize != "" {
		maxFrame, err = units.RAMInBytes(fc.MaxFrameSize)
		if err != nil {
			return fmt.Errorf("max_frame_size %q: %w", fc.MaxFrameSize, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if fc.ListenAddr != "" {
		s.ListenAddr = fc.ListenAddr
	}
	if fc.AdminAddr != "" {
		s.AdminAddr = fc.AdminAddr
	}
	if maxFrame > 0 {
		s.MaxFrameSize = maxFrame
	}
	if fc.SnapshotPath != "" {
		s.SnapshotPath = fc.SnapshotPath
	}
	if fc.SnapshotInterval > 0 {
		s.SnapshotInterval = fc.SnapshotInterval
	}
	if fc.SnapshotCodec != "" {
		s.SnapshotCodec = fc.SnapshotCodec
	}
	if fc.SnapshotBackend != "" {
		s.SnapshotBackend = fc.SnapshotBackend
	}
	if fc.S3Bucket != "" {
		s.S3Bucket = fc.S3Bucket
	}
	if fc.S3Region != "" {
		s.S3Region = fc.S3Region
	}
	if fc.S3Endpoint != "" {
		s.S3Endpoint = fc.S3Endpoint
	}
	if fc.S3AccessKeyID != "" {
		s.S3AccessKeyID = fc.S3AccessKeyID
	}
	if fc.S3SecretAccessKey != "" {
		s.S3SecretAccessKey = fc.S3SecretAccessKey
	}
	if fc.S3Prefix != "" {
		s.S3Prefix = fc.S3Prefix
	}
	if fc.S3ForcePathStyle {
		s.S3ForcePathStyle = true
	}
	if fc.CephUserName != "" {
		s.CephUserName = fc.CephUserName
	}
	if fc.CephClusterName != "" {
		s.CephClusterName = fc.CephClusterName
	}
	if fc.CephConfFile != "" {
		s.CephConfFile = fc.CephConfFile
	}
	if fc.CephPool != "" {
		s.CephPool = fc.CephPool
	}
	if fc.CephPrefix != "" {
		s.CephPrefix = fc.CephPrefix
	}
	return nil
}

// Snapshot returns a value copy safe to read without holding mu.
func (s *Settings) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Settings{
		ListenAddr:       s.ListenAddr,
		AdminAddr:        s.AdminAddr,
		ShardCount:       s.ShardCount,
		MaxFrameSize:     s.MaxFrameSize,
		SnapshotPath:     s.SnapshotPath,
		SnapshotInterval: s.SnapshotInterval,
		SnapshotCodec:    s.SnapshotCodec,
		SnapshotBackend:  s.SnapshotBackend,

		S3Bucket:          s.S3Bucket,
		S3Region:          s.S3Region,
		S3Endpoint:        s.S3Endpoint,
		S3AccessKeyID:     s.S3AccessKeyID,
		S3SecretAccessKey: s.S3SecretAccessKey,
		S3Prefix:          s.S3Prefix,
		S3ForcePathStyle:  s.S3ForcePathStyle,

		CephUserName:    s.CephUserName,
		CephClusterName: s.CephClusterName,
		CephConfFile:    s.CephConfFile,
		CephPool:        s.CephPool,
		CephPrefix:      s.CephPrefix,
	}
}

// WatchFile reloads path into s every time it changes on disk, logging
// (not panicking) on a malformed reload so a bad edit never takes the
// server down. It runs until stop is closed.
func WatchFile(s *Settings, path string, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-stop:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.LoadFile(path); err != nil {
					fmt.Printf("redikv: config reload of %s failed: %v\n", path, err)
					continue
				}
				fmt.Printf("redikv: reloaded config from %s\n", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("redikv: config watcher error: %v\n", err)
			}
		}
	}()
	return nil
}
