// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// OpenedDataObjInp is sent for every operation performed against an already
// open file descriptor: read, write, lseek, and close. Its wire element is
// OpenDataObjInp_PI despite the struct's name, matching the inconsistency
// already present in the protocol.
type OpenedDataObjInp struct {
	FD           int
	Len          int
	Whence       int
	OprType      int
	Offset       int64
	BytesWritten int64
}

// EncodeOpenedDataObjInp writes an OpenDataObjInp_PI into dst.
func EncodeOpenedDataObjInp(dst []byte, in OpenedDataObjInp) []byte {
	b := newBuilder(dst)
	b.open("OpenDataObjInp_PI")
	b.tagInt("l1descInx", int64(in.FD))
	b.tagInt("len", int64(in.Len))
	b.tagInt("whence", int64(in.Whence))
	b.tagInt("oprType", int64(in.OprType))
	b.tagInt("offset", in.Offset)
	b.tagInt("bytesWritten", in.BytesWritten)
	b.close("OpenDataObjInp_PI")
	return b.bytes()
}

// DecodeOpenedDataObjInp decodes an OpenDataObjInp_PI.
func DecodeOpenedDataObjInp(d TokenReader) (OpenedDataObjInp, error) {
	const msg = "OpenDataObjInp_PI"
	var in OpenedDataObjInp

	if err := expectStart(d, msg, "Tag", "OpenDataObjInp_PI"); err != nil {
		return in, err
	}
	fd, err := intField(d, msg, "FD", "l1descInx")
	if err != nil {
		return in, err
	}
	in.FD = int(fd)

	l, err := intField(d, msg, "Len", "len")
	if err != nil {
		return in, err
	}
	in.Len = int(l)

	whence, err := intField(d, msg, "Whence", "whence")
	if err != nil {
		return in, err
	}
	in.Whence = int(whence)

	oprType, err := intField(d, msg, "OprType", "oprType")
	if err != nil {
		return in, err
	}
	in.OprType = int(oprType)

	in.Offset, err = intField(d, msg, "Offset", "offset")
	if err != nil {
		return in, err
	}
	in.BytesWritten, err = intField(d, msg, "BytesWritten", "bytesWritten")
	if err != nil {
		return in, err
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return in, err
	}
	return in, nil
}
