// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"bytes"
	"context"
	"encoding/xml"
	"net"
	"time"

	"go.irods.dev/client/wire"
)

// frameConn is the framing layer bound to a live net.Conn: it owns the
// scratch buffers a Session reuses across every request so that steady-state
// operation performs no allocation beyond what growing past BufSize forces.
type frameConn struct {
	nc net.Conn

	readTimeout time.Duration

	headerBuf  []byte
	msgBuf     []byte
	errBuf     []byte
	bsBuf      []byte
	sendHeader []byte
}

func newFrameConn(nc net.Conn, cfg ConnConfig) *frameConn {
	return &frameConn{
		nc:          nc,
		readTimeout: cfg.ReadTimeout,
		headerBuf:   make([]byte, 0, wire.DefaultHeaderBufSize),
		msgBuf:      make([]byte, 0, cfg.BufSize),
		sendHeader:  make([]byte, 0, wire.DefaultHeaderBufSize),
	}
}

// send encodes header around body and writes both to the wire in one frame.
func (c *frameConn) send(h wire.StandardHeader, body []byte) error {
	c.sendHeader = wire.EncodeHeader(c.sendHeader[:0], h)
	return wire.WriteFrame(c.nc, c.sendHeader, body)
}

// sendBinary is send plus a trailing raw binary section, used by data-object
// writes whose payload is not XML-encoded.
func (c *frameConn) sendBinary(h wire.StandardHeader, body, bin []byte) error {
	c.sendHeader = wire.EncodeHeader(c.sendHeader[:0], h)
	if err := wire.WriteFrame(c.nc, c.sendHeader, body); err != nil {
		return err
	}
	if len(bin) == 0 {
		return nil
	}
	_, err := c.nc.Write(bin)
	return err
}

// recv reads one full frame: header, then its message/error/binary sections
// per the header's declared lengths. The returned slices alias c's internal
// buffers and are only valid until the next recv call.
func (c *frameConn) recv() (wire.StandardHeader, []byte, []byte, []byte, error) {
	if c.readTimeout > 0 {
		c.nc.SetReadDeadline(time.Now().Add(c.readTimeout))
	}
	h, err := wire.ReadHeader(c.nc, &c.headerBuf)
	if err != nil {
		return h, nil, nil, nil, err
	}
	msg, err := wire.ReadSection(c.nc, &c.msgBuf, h.MsgLen)
	if err != nil {
		return h, nil, nil, nil, err
	}
	errSec, err := wire.ReadSection(c.nc, &c.errBuf, h.ErrorLen)
	if err != nil {
		return h, nil, nil, nil, err
	}
	bs, err := wire.ReadSection(c.nc, &c.bsBuf, h.BsLen)
	if err != nil {
		return h, nil, nil, nil, err
	}
	return h, msg, errSec, bs, nil
}

// msgDecoder returns an xml token reader over a decoded message section,
// satisfying wire.TokenReader.
func msgDecoder(msg []byte) *xml.Decoder {
	return xml.NewDecoder(bytes.NewReader(msg))
}

// writeRawAck writes the raw 4-byte reply sentinel used to acknowledge a
// CollOprStat progress frame, bypassing the normal header framing.
func (c *frameConn) writeRawAck() error {
	_, err := c.nc.Write(wire.CollOprStatReplySentinel[:])
	return err
}

// withDeadline applies the earlier of d-from-now and ctx's deadline to the
// underlying connection, returning a function that clears it again.
func (c *frameConn) withDeadline(ctx context.Context, d time.Duration) (cancel func()) {
	if d <= 0 {
		return func() {}
	}
	deadline := time.Now().Add(d)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	c.nc.SetDeadline(deadline)
	return func() { c.nc.SetDeadline(time.Time{}) }
}

func (c *frameConn) Close() error {
	return c.nc.Close()
}
