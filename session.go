// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package irods

import (
	"context"
	"net"
	"time"

	"go.irods.dev/client/wire"
)

// SessionState is a bitmask that represents the current state of a Session.
type SessionState uint8

const (
	// Secure indicates that the underlying connection has been upgraded to
	// TLS following cs-negotiation.
	Secure SessionState = 1 << iota

	// Authenticated indicates that the native (or PAM) auth handshake has
	// completed successfully.
	Authenticated

	// Ready indicates the session has completed its handshake and may
	// carry API requests.
	Ready

	// Poisoned indicates the Session was abandoned mid-reply (a cancelled
	// context, a dropped connection) and must not be reused; a Pool
	// destroys rather than recycles a poisoned Session.
	Poisoned
)

// A Session represents one authenticated connection to an iRODS server. A
// Session is not safe for concurrent use: requests on a single Session are
// strictly serialized by the protocol, so callers that want concurrency
// should hold multiple Sessions, typically leased from a pool.Pool.
type Session struct {
	conn  *frameConn
	cfg   ConnConfig
	state SessionState

	account Account
	version wire.Version

	// signature is the 16-byte value captured from the first native-auth
	// round trip's request_result, used as the PAM scramble key should the
	// caller later need it.
	signature []byte

	// RecycleCount and CreatedAt are maintained by pool.Pool; exported so a
	// pool in another package can read and update retirement state without
	// this package exposing mutable internals more broadly.
	RecycleCount int
	CreatedAt    time.Time
}

func newSession(nc net.Conn, cfg ConnConfig) *Session {
	return &Session{
		conn:      newFrameConn(nc, cfg),
		cfg:       cfg,
		CreatedAt: time.Now(),
	}
}

// State returns the current session state bitmask.
func (s *Session) State() SessionState {
	return s.state
}

// Close closes the underlying connection. It does not send RODS_DISCONNECT;
// callers that want a graceful shutdown should call Disconnect first.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Disconnect sends RODS_DISCONNECT and closes the connection. The server
// does not reply to this message.
func (s *Session) Disconnect() error {
	h := wire.StandardHeader{Type: wire.MsgDisconnect}
	if err := s.conn.send(h, nil); err != nil {
		s.conn.Close()
		return wrapErr("disconnect", KindTransport, err)
	}
	return s.conn.Close()
}

// poison marks the session unusable for pool recycling, typically because a
// reply was abandoned mid-read.
func (s *Session) poison() {
	s.state |= Poisoned
}

// Poisoned reports whether the session must be destroyed rather than
// recycled.
func (s *Session) Poisoned() bool {
	return s.state&Poisoned != 0
}

// apiRequest is the core request/reply primitive: it sends a RODS_API_REQ
// header with the given API number around body (and an optional trailing
// binary section), then reads back the reply header and its message/error/
// binary sections. A negative reply IntInfo is translated into a KindServer
// Error; callers that expect a specific negative IntInfo (like end-of-stream
// markers) should use apiRequestRaw instead.
func (s *Session) apiRequest(ctx context.Context, op string, apiNumber int32, body, bin []byte) (msg, bs []byte, err error) {
	h, msg, bs, err := s.apiRequestRaw(ctx, op, apiNumber, body, bin)
	if err != nil {
		return nil, nil, err
	}
	if h.IntInfo < 0 {
		return nil, nil, serverErr(op, h.IntInfo)
	}
	return msg, bs, nil
}

// apiRequestRaw is apiRequest without the automatic negative-IntInfo
// translation, for the handful of operations that read IntInfo themselves:
// Open and Create take the handle from it, and GenQuery treats a negative
// value as end-of-stream rather than a failure.
func (s *Session) apiRequestRaw(ctx context.Context, op string, apiNumber int32, body, bin []byte) (wire.StandardHeader, []byte, []byte, error) {
	cancel := s.conn.withDeadline(ctx, s.cfg.RequestTimeout)
	defer cancel()

	h := wire.StandardHeader{
		Type:    wire.MsgAPIReq,
		MsgLen:  len(body),
		BsLen:   len(bin),
		IntInfo: apiNumber,
	}
	if err := s.conn.sendBinary(h, body, bin); err != nil {
		s.poison()
		return wire.StandardHeader{}, nil, nil, wrapErr(op, KindTransport, err)
	}
	if s.cfg.DebugLog != nil {
		s.cfg.DebugLog.Printf("irods: -> %s apn=%d len=%d", op, apiNumber, len(body))
	}

	replyHeader, replyMsg, replyErr, replyBs, err := s.conn.recv()
	if err != nil {
		s.poison()
		select {
		case <-ctx.Done():
			return wire.StandardHeader{}, nil, nil, wrapErr(op, KindTransport, ctx.Err())
		default:
		}
		return wire.StandardHeader{}, nil, nil, wrapErr(op, KindTransport, err)
	}
	if s.cfg.DebugLog != nil {
		s.cfg.DebugLog.Printf("irods: <- %s intInfo=%d msgLen=%d errLen=%d bsLen=%d", op, replyHeader.IntInfo, replyHeader.MsgLen, len(replyErr), len(replyBs))
	}
	_ = replyErr
	return replyHeader, replyMsg, replyBs, nil
}
