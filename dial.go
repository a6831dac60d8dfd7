// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"
	"net"
)

// A Dialer contains options for connecting to an iRODS server and
// completing its handshake and authentication.
//
// The zero value is equivalent to dialing with default timeouts and no TLS
// preference beyond CSNegDontCare.
type Dialer struct {
	net.Dialer
}

// DialSession dials addr on the named network, then performs the startup
// handshake (including cs-negotiation and an optional TLS upgrade) and
// authenticates as account, returning a ready-to-use Session.
//
// ctx governs the dial itself; once connected, each handshake round trip
// is bounded by cfg.RequestTimeout/ReadTimeout rather than ctx, since the
// handshake predates any deadline a caller's context might carry. A
// failed handshake closes the underlying connection before returning.
func (d *Dialer) DialSession(ctx context.Context, network, addr string, account Account, cfg ConnConfig) (*Session, error) {
	cfg = cfg.withDefaults()
	nc, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, wrapErr("dial", KindTransport, err)
	}

	sess := newSession(nc, cfg)
	if err := sess.handshake(ctx, account); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

// DialSession is a convenience wrapper around (&Dialer{}).DialSession.
func DialSession(ctx context.Context, network, addr string, account Account, cfg ConnConfig) (*Session, error) {
	var d Dialer
	return d.DialSession(ctx, network, addr, account, cfg)
}
