// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// CloseHandle invalidates handle. Using it again on this Session after
// Close returns a server error.
func (s *Session) CloseHandle(ctx context.Context, handle DataObjectHandle) error {
	in := wire.OpenedDataObjInp{FD: int(handle)}
	body := wire.EncodeOpenedDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	_, _, err := s.apiRequest(ctx, "close", apnDataObjClose, body, nil)
	return err
}

// Unlink removes a data object. Pass WithForce to bypass the trash
// collection.
func (s *Session) Unlink(ctx context.Context, path string, opts ...OpenOption) error {
	in := wire.DataObjInp{ObjPath: path}
	for _, opt := range opts {
		opt(&in)
	}
	body := wire.EncodeDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	_, _, err := s.apiRequest(ctx, "unlink", apnDataObjUnlink, body, nil)
	return err
}

// WithForce skips the trash collection on removal, for Unlink. RemoveAll
// takes ForceRemove instead.
func WithForce() OpenOption {
	return func(in *wire.DataObjInp) {
		in.CondInput = append(in.CondInput, wire.KeyVal{Key: "forceFlag", Value: ""})
	}
}
