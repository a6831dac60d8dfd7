// Copyright 2014 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package irods implements a client for the iRODS wire protocol: the
// framing, handshake, and request/reply conventions used by the iCAT and
// resource servers of an iRODS grid.
//
// A Session is a single authenticated connection. Sessions are normally
// obtained from a pool.Pool rather than dialed directly, since most
// operations (and all of the transfer package's parallel transfers) need
// more than one concurrently.
//
//	var d irods.Dialer
//	sess, err := d.DialSession(ctx, "tcp", addr, account, cfg)
//	if err != nil {
//		// handle error
//	}
//	defer sess.Close()
//
//	stat, err := sess.Stat(ctx, "/tempZone/home/rods/data.txt")
//
// The wire sub-package implements the length-prefixed, XML-dialect framing
// and message catalogue this package's Session is built on; most callers
// never need to import it directly.
package irods // import "go.irods.dev/client"
