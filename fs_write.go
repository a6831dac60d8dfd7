// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// Write writes p to handle's current cursor. On success it returns len(p);
// the byte count the server reports in its reply is not inspected.
func (s *Session) Write(ctx context.Context, handle DataObjectHandle, p []byte) (int, error) {
	in := wire.OpenedDataObjInp{
		FD:     int(handle),
		Len:    len(p),
		Whence: int(SeekSet),
	}
	body := wire.EncodeOpenedDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	_, _, err := s.apiRequest(ctx, "write", apnDataObjWrite, body, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
