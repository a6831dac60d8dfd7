// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// OpenOption configures an Open call beyond its path and flags.
type OpenOption func(*wire.DataObjInp)

// WithResource pins the operation to a named resource or resource
// hierarchy, the equivalent of the icommands "-R" flag.
func WithResource(resc string) OpenOption {
	return func(in *wire.DataObjInp) {
		in.CondInput = append(in.CondInput, wire.KeyVal{Key: "rescName", Value: resc})
	}
}

// Open opens path with the given flags and returns a handle valid for the
// lifetime of this Session. Create implies the object is created if it does
// not already exist.
func (s *Session) Open(ctx context.Context, path string, flags OpenFlag, opts ...OpenOption) (DataObjectHandle, error) {
	in := wire.DataObjInp{
		ObjPath:   path,
		OpenFlags: int(flags),
		OprType:   int(OprNone),
		DataSize:  -1,
	}
	for _, opt := range opts {
		opt(&in)
	}

	body := wire.EncodeDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	h, _, _, err := s.apiRequestRaw(ctx, "open", apnDataObjOpen, body, nil)
	if err != nil {
		return 0, err
	}
	if h.IntInfo < 0 {
		return 0, serverErr("open", h.IntInfo)
	}
	return DataObjectHandle(h.IntInfo), nil
}

// Create is Open with the Create flag always set, matching the icommands
// convention of a distinct creation call.
func (s *Session) Create(ctx context.Context, path string, mode int, opts ...OpenOption) (DataObjectHandle, error) {
	in := wire.DataObjInp{
		ObjPath:    path,
		CreateMode: mode,
		OpenFlags:  int(ReadWrite) | int(Create),
		OprType:    int(OprNone),
		DataSize:   0,
	}
	for _, opt := range opts {
		opt(&in)
	}

	body := wire.EncodeDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	h, _, _, err := s.apiRequestRaw(ctx, "create", apnDataObjCreate, body, nil)
	if err != nil {
		return 0, err
	}
	if h.IntInfo < 0 {
		return 0, serverErr("create", h.IntInfo)
	}
	return DataObjectHandle(h.IntInfo), nil
}
