// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// RemoveOption configures RemoveAll and MakeCollection.
type RemoveOption func(*wire.CollInp)

// Recursive removes a collection and its contents.
func Recursive() RemoveOption {
	return func(in *wire.CollInp) {
		in.CondInput = append(in.CondInput, wire.KeyVal{Key: "recursiveOpr", Value: ""})
	}
}

// ForceRemove skips the trash collection.
func ForceRemove() RemoveOption {
	return func(in *wire.CollInp) {
		in.CondInput = append(in.CondInput, wire.KeyVal{Key: "forceFlag", Value: ""})
	}
}

// RemoveAll deletes a collection. The server may respond with one or more
// progress headers before the terminating reply; each must be acknowledged
// with the raw reply sentinel before the next header is read.
func (s *Session) RemoveAll(ctx context.Context, path string, opts ...RemoveOption) error {
	in := wire.CollInp{CollName: path}
	for _, opt := range opts {
		opt(&in)
	}
	body := wire.EncodeCollInp(make([]byte, 0, s.cfg.BufSize), in)

	cancel := s.conn.withDeadline(ctx, s.cfg.RequestTimeout)
	defer cancel()

	h := wire.StandardHeader{Type: wire.MsgAPIReq, MsgLen: len(body), IntInfo: apnRmColl}
	if err := s.conn.send(h, body); err != nil {
		s.poison()
		return wrapErr("rmcoll", KindTransport, err)
	}

	for {
		replyHeader, _, _, _, err := s.conn.recv()
		if err != nil {
			s.poison()
			return wrapErr("rmcoll", KindTransport, err)
		}
		if replyHeader.IntInfo != wire.CollStatProgress {
			if replyHeader.IntInfo < 0 {
				return serverErr("rmcoll", replyHeader.IntInfo)
			}
			return nil
		}
		if err := s.conn.writeRawAck(); err != nil {
			s.poison()
			return wrapErr("rmcoll", KindTransport, err)
		}
	}
}

// MakeCollection creates a new collection at path, including any missing
// parents when Recursive is passed.
func (s *Session) MakeCollection(ctx context.Context, path string, opts ...RemoveOption) error {
	in := wire.CollInp{CollName: path}
	for _, opt := range opts {
		opt(&in)
	}
	body := wire.EncodeCollInp(make([]byte, 0, s.cfg.BufSize), in)
	_, _, err := s.apiRequest(ctx, "mkcoll", apnCollCreate, body, nil)
	return err
}
