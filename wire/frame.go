// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"io"
)

// Default buffer sizes per spec.md §4.2's growth policy.
const (
	DefaultHeaderBufSize = 512
	DefaultMsgBufSize    = 2048
	DefaultScratchSize   = 8092
)

// grow returns buf with at least capacity n, preserving buf[:len(buf)] and
// never shrinking. A doubling strategy is used when the requested size
// exceeds current capacity.
func grow(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}
	newCap := cap(buf) * 2
	if newCap < n {
		newCap = n
	}
	next := make([]byte, n, newCap)
	copy(next, buf)
	return next
}

// WriteFrame writes uint32_be(len(header)) || header || body to w. header is
// an already-encoded StandardHeader; body is the concatenation of message,
// error, and binary sections implied by that header's length fields.
func WriteFrame(w io.Writer, header, body []byte) error {
	if len(header) > MaxHeaderLen {
		return fmt.Errorf("wire: encoded header is %d bytes, exceeds MaxHeaderLen %d", len(header), MaxHeaderLen)
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(header)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	_, err := w.Write(body)
	return err
}

// ReadHeader reads exactly 4 bytes of big-endian length, then that many
// header bytes into *headerBuf (growing it if necessary), and decodes the
// StandardHeader. It returns the decoded header; the raw header bytes stay
// in *headerBuf.
func ReadHeader(r io.Reader, headerBuf *[]byte) (StandardHeader, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return StandardHeader{}, fmt.Errorf("wire: reading frame length: %w", err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > MaxHeaderLen {
		return StandardHeader{}, fmt.Errorf("wire: frame header length %d exceeds MaxHeaderLen %d", n, MaxHeaderLen)
	}
	*headerBuf = grow(*headerBuf, int(n))
	if _, err := io.ReadFull(r, *headerBuf); err != nil {
		return StandardHeader{}, fmt.Errorf("wire: reading frame header: %w", err)
	}
	dec := xml.NewDecoder(bytes.NewReader(*headerBuf))
	return DecodeHeader(dec)
}

// ReadSection reads exactly n bytes from r into *buf (growing it if
// necessary) and returns the filled view.
func ReadSection(r io.Reader, buf *[]byte, n int) ([]byte, error) {
	if n == 0 {
		return (*buf)[:0], nil
	}
	*buf = grow(*buf, n)
	if _, err := io.ReadFull(r, *buf); err != nil {
		return nil, fmt.Errorf("wire: reading %d-byte section: %w", n, err)
	}
	return *buf, nil
}
