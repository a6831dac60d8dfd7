// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/wire"
)

// ObjType reports what kind of catalog entity a Stat described.
type ObjType = wire.ObjType

// The object types Stat can report.
const (
	ObjUnknown     = wire.ObjUnknown
	ObjDataObj     = wire.ObjDataObj
	ObjColl        = wire.ObjColl
	ObjUnknownFile = wire.ObjUnknownFile
	ObjLocalFile   = wire.ObjLocalFile
	ObjLocalDir    = wire.ObjLocalDir
)

// Stat describes a catalog object: a data object, a collection, or one of
// the file-system-local variants the server also reports through the same
// message.
type Stat struct {
	Size       int64
	Type       ObjType
	Mode       uint32
	ID         uint32
	Checksum   uint32
	HasChecksum bool
	OwnerName  string
	OwnerZone  string
	CreateTime uint64
	ModifyTime uint64
}

// Stat retrieves metadata for path without opening it.
func (s *Session) Stat(ctx context.Context, path string) (Stat, error) {
	in := wire.DataObjInp{ObjPath: path}
	body := wire.EncodeDataObjInp(make([]byte, 0, s.cfg.BufSize), in)
	msg, _, err := s.apiRequest(ctx, "stat", apnObjStat, body, nil)
	if err != nil {
		return Stat{}, err
	}
	rs, err := wire.DecodeRodsObjStat(msgDecoder(msg))
	if err != nil {
		return Stat{}, wrapErr("stat", KindEncoding, err)
	}
	return Stat{
		Size:        rs.Size,
		Type:        rs.ObjType,
		Mode:        rs.Mode,
		ID:          rs.ID,
		Checksum:    rs.Checksum,
		HasChecksum: rs.HasChecksum,
		OwnerName:   rs.OwnerName,
		OwnerZone:   rs.OwnerZone,
		CreateTime:  rs.CreateTime,
		ModifyTime:  rs.ModifyTime,
	}, nil
}
