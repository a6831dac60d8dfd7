// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// Read reads up to len(p) bytes from handle's current cursor, returning the
// number of bytes actually read. A short read (n < len(p)) without an error
// indicates end of file, matching the idiom most readers in this module's
// ancestry use for their transport reads.
func (s *Session) Read(ctx context.Context, handle DataObjectHandle, p []byte) (int, error) {
	in := wire.OpenedDataObjInp{
		FD:     int(handle),
		Len:    len(p),
		Whence: int(SeekSet),
	}
	body := wire.EncodeOpenedDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	_, bs, err := s.apiRequest(ctx, "read", apnDataObjRead, body, nil)
	if err != nil {
		return 0, err
	}
	n := copy(p, bs)
	return n, nil
}
