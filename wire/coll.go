// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// CollInp is the request body for mkcoll, rmcoll, and the other
// collection-wide operations.
type CollInp struct {
	CollName  string
	Flags     int32
	OprType   int
	CondInput []KeyVal
}

// EncodeCollInp writes a CollInpNew_PI into dst.
func EncodeCollInp(dst []byte, in CollInp) []byte {
	b := newBuilder(dst)
	b.open("CollInpNew_PI")
	b.tag("collName", in.CollName)
	b.tagInt("flags", int64(in.Flags))
	b.tagInt("oprType", int64(in.OprType))
	appendKeyValPairInline(b, in.CondInput)
	b.close("CollInpNew_PI")
	return b.bytes()
}

// CollOprStat is a progress sentinel the server may emit repeatedly while
// servicing a recursive collection delete. Each one must be acknowledged by
// the client with the raw 4-byte reply sentinel before the next frame is
// read.
type CollOprStat struct {
	FilesCnt     int32
	TotalFileCnt int32
	BytesWritten int64
	LastObjPath  string
}

// DecodeCollOprStat decodes a CollOprStat_PI.
func DecodeCollOprStat(d TokenReader) (CollOprStat, error) {
	const msg = "CollOprStat_PI"
	var s CollOprStat

	if err := expectStart(d, msg, "Tag", "CollOprStat_PI"); err != nil {
		return s, err
	}
	filesCnt, err := intField(d, msg, "FilesCnt", "filesCnt")
	if err != nil {
		return s, err
	}
	s.FilesCnt = int32(filesCnt)

	totalFileCnt, err := intField(d, msg, "TotalFileCnt", "totalFileCnt")
	if err != nil {
		return s, err
	}
	s.TotalFileCnt = int32(totalFileCnt)

	s.BytesWritten, err = intField(d, msg, "BytesWritten", "bytesWritten")
	if err != nil {
		return s, err
	}
	s.LastObjPath, err = textField(d, msg, "LastObjPath", "lastObjPath")
	if err != nil {
		return s, err
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return s, err
	}
	return s, nil
}

// CollStatProgress is the reply header's IntInfo value the server sends
// repeatedly while a recursive rmcoll is in progress; CollStatProgressReply
// is the value the client must acknowledge each one with, as
// CollOprStatReplySentinel, before the server sends the terminating header.
const (
	CollStatProgress      int32 = 99999996
	CollStatProgressReply int32 = 99999997
)

// CollOprStatReplySentinel is the raw 4-byte big-endian reply the client
// writes back for every CollOprStat progress frame it receives, outside the
// normal length-prefixed-header framing.
var CollOprStatReplySentinel = func() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(CollStatProgressReply))
	return b
}()
