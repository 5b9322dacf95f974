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

// Package snapshot implements periodic, compressed, pluggable-backend
// dumps of the store: store.Dump/Load produce the uncompressed record
// stream, a Codec compresses it in flight, and a Backend places the
// compressed bytes somewhere durable (local disk, S3, Ceph/RADOS).
package snapshot

import (
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Codec wraps a compressed stream around a store dump.
type Codec interface {
	Name() string
	NewWriter(w io.Writer) io.WriteCloser
	NewReader(r io.Reader) (io.Reader, error)
}

// CodecByName resolves a configured codec name (server/settings'
// SnapshotCodec) to a Codec. "none" disables compression entirely.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "lz4":
		return lz4Codec{}, nil
	case "xz":
		return xzCodec{}, nil
	case "none":
		return noneCodec{}, nil
	default:
		return nil, fmt.Errorf("snapshot: unknown codec %q", name)
	}
}

type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }

func (lz4Codec) NewWriter(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) }

func (lz4Codec) NewReader(r io.Reader) (io.Reader, error) { return lz4.NewReader(r), nil }

type xzCodec struct{}

func (xzCodec) Name() string { return "xz" }

func (xzCodec) NewWriter(w io.Writer) io.WriteCloser {
	zw, err := xz.NewWriter(w)
	if err != nil {
		// xz.NewWriter only fails on invalid options; the zero-value
		// config this package uses is always valid.
		panic(fmt.Sprintf("snapshot: xz.NewWriter: %v", err))
	}
	return xzWriteCloser{zw}
}

func (xzCodec) NewReader(r io.Reader) (io.Reader, error) { return xz.NewReader(r) }

// xzWriteCloser adapts *xz.Writer (which exposes Close but not as part of
// an io.Writer embedding that already satisfies io.WriteCloser) to the
// Codec interface.
type xzWriteCloser struct{ w *xz.Writer }

func (x xzWriteCloser) Write(p []byte) (int, error) { return x.w.Write(p) }
func (x xzWriteCloser) Close() error                { return x.w.Close() }

type noneCodec struct{}

func (noneCodec) Name() string                            { return "none" }
func (noneCodec) NewWriter(w io.Writer) io.WriteCloser     { return nopWriteCloser{w} }
func (noneCodec) NewReader(r io.Reader) (io.Reader, error) { return r, nil }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
