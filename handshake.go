// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"
	"crypto/tls"
	"errors"

	"go.irods.dev/client/wire"
)

// clientRelVersion is the release this client presents itself as during
// Connect. Only the major version is load-bearing: this client rejects any
// server Version reply whose major release is not 4.
var clientRelVersion = [3]int{4, 3, 0}

// ErrUnsupportedVersion is returned from handshake when the server's
// release major version is not one this client understands.
var ErrUnsupportedVersion = errors.New("irods: unsupported server release version")

// ErrNegotiationMismatch is returned when the local and server cs-neg
// policies combine to a hard failure per the negotiation table (REFUSE vs
// REQUIRE in either direction).
var ErrNegotiationMismatch = errors.New("irods: cs-negotiation policy mismatch")

// handshake drives the Connect -> AwaitVersion -> Negotiate -> Authenticate
// state machine documented for the Handshake component. It mutates s in
// place, replacing s.conn's transport with a TLS session if negotiation
// selects one.
func (s *Session) handshake(ctx context.Context, account Account) error {
	account = account.normalize()
	s.account = account

	startup := wire.StartupPack{
		Proto:      wire.ProtoXML,
		ReconnFlag: 0,
		ConnectCnt: 0,
		ProxyUser:  account.ProxyUser,
		ProxyZone:  account.ProxyZone,
		ClientUser: account.ClientUser,
		ClientZone: account.ClientZone,
		RelVersion: clientRelVersion,
		APIVersion: "d",
		Option:     "packe", // request cs-negotiation
	}
	body := wire.EncodeStartupPack(make([]byte, 0, s.cfg.BufSize), startup)
	if err := s.conn.send(wire.StandardHeader{Type: wire.MsgConnect, MsgLen: len(body)}, body); err != nil {
		return wrapErr("handshake", KindTransport, err)
	}

	h, msg, _, _, err := s.conn.recv()
	if err != nil {
		return wrapErr("handshake", KindTransport, err)
	}
	if h.Type != wire.MsgVersion {
		return wrapErr("handshake", KindProtocol, errUnexpectedMsgType(wire.MsgVersion, h.Type))
	}
	version, err := wire.DecodeVersion(msgDecoder(msg))
	if err != nil {
		return wrapErr("handshake", KindEncoding, err)
	}
	if version.RelVersion[0] != 4 {
		return wrapErr("handshake", KindProtocol, ErrUnsupportedVersion)
	}
	s.version = version

	useTLS, err := s.negotiateCSNeg(ctx)
	if err != nil {
		return err
	}
	if useTLS {
		if err := s.upgradeTLS(); err != nil {
			return wrapErr("handshake", KindTransport, err)
		}
		s.state |= Secure
	}

	if err := s.authenticate(ctx, account); err != nil {
		return err
	}
	s.state |= Authenticated | Ready
	return nil
}

// negotiateCSNeg reads the server's CS_NEG_PI, combines it with the local
// policy per the negotiation table, writes back the decision, and reports
// whether TLS was selected.
func (s *Session) negotiateCSNeg(ctx context.Context) (bool, error) {
	h, msg, _, _, err := s.conn.recv()
	if err != nil {
		return false, wrapErr("cs-neg", KindTransport, err)
	}
	if h.Type != wire.MsgCSNeg {
		return false, wrapErr("cs-neg", KindProtocol, errUnexpectedMsgType(wire.MsgCSNeg, h.Type))
	}
	serverNeg, err := wire.DecodeServerCSNeg(msgDecoder(msg))
	if err != nil {
		return false, wrapErr("cs-neg", KindEncoding, err)
	}

	useTLS, ok := combineCSNegPolicy(s.cfg.CSNegPolicy, serverNeg.Result)
	if !ok {
		return false, wrapErr("cs-neg", KindProtocol, ErrNegotiationMismatch)
	}

	result := wire.CSNegUseTCP
	if useTLS {
		result = wire.CSNegUseSSL
	}
	reply := wire.EncodeClientCSNeg(make([]byte, 0, 256), wire.ClientCSNeg{Status: 1, Result: result})
	if err := s.conn.send(wire.StandardHeader{Type: wire.MsgCSNeg, MsgLen: len(reply)}, reply); err != nil {
		return false, wrapErr("cs-neg", KindTransport, err)
	}
	return useTLS, nil
}

// combineCSNegPolicy implements the table in the Handshake component's
// negotiation section: local policy (rows) combined with the server's
// policy (columns).
func combineCSNegPolicy(local CSNegPolicy, server wire.CSNegPolicy) (useTLS, ok bool) {
	switch local {
	case CSNegRefuse:
		if server == wire.CSNegRequire {
			return false, false
		}
		return false, true
	case CSNegDontCare:
		if server == wire.CSNegRequire {
			return true, true
		}
		return false, true
	case CSNegRequire:
		if server == wire.CSNegRefuse {
			return false, false
		}
		return true, true
	default:
		return false, false
	}
}

// upgradeTLS replaces s.conn's transport with a client-side TLS connection.
func (s *Session) upgradeTLS() error {
	tlsConf := s.cfg.TLSConfig
	if tlsConf == nil {
		tlsConf = &tls.Config{}
	}
	tlsConn := tls.Client(s.conn.nc, tlsConf)
	if err := tlsConn.Handshake(); err != nil {
		return err
	}
	s.conn.nc = tlsConn
	return nil
}

func errUnexpectedMsgType(want, got wire.MsgType) error {
	return &mismatchedMsgType{want: want, got: got}
}

type mismatchedMsgType struct {
	want, got wire.MsgType
}

func (e *mismatchedMsgType) Error() string {
	return "irods: expected message type " + string(e.want) + ", got " + string(e.got)
}
