// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/xml"
	"strconv"
)

// ObjType enumerates the kinds of entity RodsObjStat can describe.
type ObjType int

// The object types the catalog reports.
const (
	ObjUnknown ObjType = iota
	ObjDataObj
	ObjColl
	ObjUnknownFile
	ObjLocalFile
	ObjLocalDir
	ObjNoInput
)

// RodsObjStat is the reply to an object-stat request.
type RodsObjStat struct {
	Size       int64
	ObjType    ObjType
	Mode       uint32
	ID         uint32
	Checksum   uint32 // 0 if the server sent an empty chksum element
	HasChecksum bool
	OwnerName  string
	OwnerZone  string
	CreateTime uint64
	ModifyTime uint64
}

// DecodeRodsObjStat decodes a RodsObjStat_PI using an explicit state
// machine. The chksum field is read token by token rather than through
// textField: an empty element leaves HasChecksum false, and a value that
// does not parse as an unsigned 32-bit integer is ignored the same way.
func DecodeRodsObjStat(d TokenReader) (RodsObjStat, error) {
	const msg = "RodsObjStat_PI"
	var s RodsObjStat

	if err := expectStart(d, msg, "Tag", "RodsObjStat_PI"); err != nil {
		return s, err
	}
	size, err := intField(d, msg, "Size", "objSize")
	if err != nil {
		return s, err
	}
	s.Size = size

	objType, err := intField(d, msg, "ObjType", "objType")
	if err != nil {
		return s, err
	}
	switch ObjType(objType) {
	case ObjUnknown, ObjDataObj, ObjColl, ObjUnknownFile, ObjLocalFile, ObjLocalDir, ObjNoInput:
		s.ObjType = ObjType(objType)
	default:
		return s, &StateError{Msg: msg, State: "ObjType", Found: "invalid objType"}
	}

	mode, err := uintField(d, msg, "Mode", "dataMode")
	if err != nil {
		return s, err
	}
	s.Mode = uint32(mode)

	id, err := uintField(d, msg, "Id", "dataId")
	if err != nil {
		return s, err
	}
	s.ID = uint32(id)

	if err := expectStart(d, msg, "Checksum", "chksum"); err != nil {
		return s, err
	}
	tok, err := d.Token()
	if err != nil {
		return s, &StateError{Msg: msg, State: "ChecksumInner", Found: "read error: " + err.Error()}
	}
	switch t := tok.(type) {
	case xml.EndElement:
		// empty <chksum></chksum>: no checksum recorded.
	case xml.CharData:
		text, err := Unescape(string(t))
		if err != nil {
			return s, &StateError{Msg: msg, State: "ChecksumInner", Found: err.Error()}
		}
		if n, err := strconv.ParseUint(text, 10, 32); err == nil {
			s.Checksum = uint32(n)
			s.HasChecksum = true
		}
		if err := expectEnd(d, msg, "Checksum"); err != nil {
			return s, err
		}
	default:
		return s, &StateError{Msg: msg, State: "ChecksumInner", Found: "unexpected token"}
	}

	s.OwnerName, err = textField(d, msg, "OwnerName", "ownerName")
	if err != nil {
		return s, err
	}
	s.OwnerZone, err = textField(d, msg, "OwnerZone", "ownerZone")
	if err != nil {
		return s, err
	}
	s.CreateTime, err = uintField(d, msg, "CreateTime", "createTime")
	if err != nil {
		return s, err
	}
	s.ModifyTime, err = uintField(d, msg, "ModifyTime", "modifyTime")
	if err != nil {
		return s, err
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return s, err
	}
	return s, nil
}
