// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

// Package irodstest runs a minimal fake iRODS server that speaks just enough
// of the startup handshake and native-auth exchange for another package's
// tests to obtain a real, ready *irods.Session without a live catalog.
package irodstest

import (
	"context"
	"net"
	"strings"

	"go.irods.dev/client"
	"go.irods.dev/client/wire"
)

// TestAccount is a stand-in Account the fake server accepts regardless of
// its contents; the fake auth exchange never checks the digest it receives.
var TestAccount = irods.Account{
	ProxyUser:  "rods",
	ProxyZone:  "tempZone",
	ClientUser: "rods",
	ClientZone: "tempZone",
	Password:   "rods",
}

// Dial starts a fake server and dials it, returning a ready Session and a
// cleanup function that closes both the Session and the server.
func Dial(ctx context.Context, cfg irods.ConnConfig) (*irods.Session, func(), error) {
	srv, addr, err := Listen()
	if err != nil {
		return nil, nil, err
	}
	sess, err := irods.DialSession(ctx, "tcp", addr, TestAccount, cfg)
	if err != nil {
		srv.Close()
		return nil, nil, err
	}
	return sess, func() {
		sess.Close()
		srv.Close()
	}, nil
}

const fakeVersionBody = `<Version_PI><status>0</status><relVersion>rods4.3.0</relVersion>` +
	`<apiVersion>d</apiVersion><reconnPort>0</reconnPort><reconnAddr></reconnAddr>` +
	`<cookie>0</cookie></Version_PI>`

const fakeCSNegBody = `<CS_NEG_PI><status>1</status><result>CS_NEG_DONT_CARE</result></CS_NEG_PI>`

// Server is a fake iRODS endpoint bound to a loopback port. Every accepted
// connection completes the startup handshake and native-auth round trips
// with canned replies, then idles until the client closes it.
type Server struct {
	ln net.Listener
}

// Listen starts a fake server on an available loopback port and returns it
// along with the address to dial.
func Listen() (*Server, string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", err
	}
	s := &Server{ln: ln}
	go s.acceptLoop()
	return s, ln.Addr().String(), nil
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.ln.Close()
}

func (s *Server) acceptLoop() {
	for {
		nc, err := s.ln.Accept()
		if err != nil {
			return
		}
		go serve(nc)
	}
}

func serve(nc net.Conn) {
	defer nc.Close()
	if err := handshake(nc); err != nil {
		return
	}
	// Idle until the client hangs up; a Session's further requests (if
	// any) are not needed by the tests this server supports.
	var headerBuf []byte
	for {
		if _, err := wire.ReadHeader(nc, &headerBuf); err != nil {
			return
		}
	}
}

func handshake(nc net.Conn) error {
	var headerBuf, msgBuf []byte

	// Connect
	h, err := wire.ReadHeader(nc, &headerBuf)
	if err != nil {
		return err
	}
	if _, err := wire.ReadSection(nc, &msgBuf, h.MsgLen); err != nil {
		return err
	}

	// Version
	if err := writeFrame(nc, wire.MsgVersion, 0, []byte(fakeVersionBody)); err != nil {
		return err
	}

	// CS negotiation: offer, then read the client's decision.
	if err := writeFrame(nc, wire.MsgCSNeg, 0, []byte(fakeCSNegBody)); err != nil {
		return err
	}
	h, err = wire.ReadHeader(nc, &headerBuf)
	if err != nil {
		return err
	}
	if _, err := wire.ReadSection(nc, &msgBuf, h.MsgLen); err != nil {
		return err
	}

	// Native auth round 1: read the request, reply with a fixed
	// request_result.
	h, err = wire.ReadHeader(nc, &headerBuf)
	if err != nil {
		return err
	}
	if _, err := wire.ReadSection(nc, &msgBuf, h.MsgLen); err != nil {
		return err
	}
	round1 := `{"a_ttl":"30","force_password_prompt":"true",` +
		`"next_operation":"auth_agent_auth_response","request_result":"` +
		strings.Repeat("X", 256) + `","scheme":"native",` +
		`"user_name":"rods","zone_name":"tempZone"}`
	reply := wire.EncodeBinBytesBuf(nil, []byte(round1))
	if err := writeFrame(nc, wire.MsgAPIReply, 0, reply); err != nil {
		return err
	}

	// Native auth round 2: read the digest, reply with an empty envelope.
	h, err = wire.ReadHeader(nc, &headerBuf)
	if err != nil {
		return err
	}
	if _, err := wire.ReadSection(nc, &msgBuf, h.MsgLen); err != nil {
		return err
	}
	reply2 := wire.EncodeBinBytesBuf(nil, []byte(`{}`))
	return writeFrame(nc, wire.MsgAPIReply, 0, reply2)
}

func writeFrame(nc net.Conn, typ wire.MsgType, intInfo int32, body []byte) error {
	header := wire.EncodeHeader(nil, wire.StandardHeader{
		Type:    typ,
		MsgLen:  len(body),
		IntInfo: intInfo,
	})
	return wire.WriteFrame(nc, header, body)
}
