// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// Seek repositions the server-side cursor for handle and returns the
// resulting absolute offset.
func (s *Session) Seek(ctx context.Context, handle DataObjectHandle, offset int64, whence Whence) (int64, error) {
	in := wire.OpenedDataObjInp{
		FD:     int(handle),
		Whence: int(whence),
		Offset: offset,
	}
	body := wire.EncodeOpenedDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	msg, _, err := s.apiRequest(ctx, "seek", apnDataObjLseek, body, nil)
	if err != nil {
		return 0, err
	}
	out, err := wire.DecodeFileLseekOut(msgDecoder(msg))
	if err != nil {
		return 0, wrapErr("seek", KindEncoding, err)
	}
	return out.Offset, nil
}
