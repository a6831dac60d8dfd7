// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// DataObjInp is the request body shared by open, stat, unlink, and the other
// single-object operations. Its CondInput key/value list carries the
// operation-specific flags (e.g. "forceFlag", "regRepl") that would otherwise
// need a distinct message type per verb.
type DataObjInp struct {
	ObjPath    string
	CreateMode int
	OpenFlags  int
	OprType    int
	Offset     int64
	DataSize   int64
	NumThreads int
	SpecColl   *SpecColl
	CondInput  []KeyVal
}

// EncodeDataObjInp writes a DataObjInp_PI into dst.
func EncodeDataObjInp(dst []byte, in DataObjInp) []byte {
	b := newBuilder(dst)
	b.open("DataObjInp_PI")
	b.tag("objPath", in.ObjPath)
	b.tagInt("createMode", int64(in.CreateMode))
	b.tagInt("openFlags", int64(in.OpenFlags))
	b.tagInt("oprType", int64(in.OprType))
	b.tagInt("offset", in.Offset)
	b.tagInt("dataSize", in.DataSize)
	b.tagInt("numThreads", int64(in.NumThreads))
	appendSpecColl(b, in.SpecColl)
	appendKeyValPairInline(b, in.CondInput)
	b.close("DataObjInp_PI")
	return b.bytes()
}

// DecodeDataObjInp decodes a DataObjInp_PI.
func DecodeDataObjInp(d TokenReader) (DataObjInp, error) {
	const msg = "DataObjInp_PI"
	var in DataObjInp

	if err := expectStart(d, msg, "Tag", "DataObjInp_PI"); err != nil {
		return in, err
	}
	var err error
	in.ObjPath, err = textField(d, msg, "ObjPath", "objPath")
	if err != nil {
		return in, err
	}
	createMode, err := intField(d, msg, "CreateMode", "createMode")
	if err != nil {
		return in, err
	}
	in.CreateMode = int(createMode)

	openFlags, err := intField(d, msg, "OpenFlags", "openFlags")
	if err != nil {
		return in, err
	}
	in.OpenFlags = int(openFlags)

	oprType, err := intField(d, msg, "OprType", "oprType")
	if err != nil {
		return in, err
	}
	in.OprType = int(oprType)

	in.Offset, err = intField(d, msg, "Offset", "offset")
	if err != nil {
		return in, err
	}
	in.DataSize, err = intField(d, msg, "DataSize", "dataSize")
	if err != nil {
		return in, err
	}
	numThreads, err := intField(d, msg, "NumThreads", "numThreads")
	if err != nil {
		return in, err
	}
	in.NumThreads = int(numThreads)

	in.SpecColl, err = decodeSpecColl(d)
	if err != nil {
		return in, err
	}
	in.CondInput, err = DecodeKeyValPair(d)
	if err != nil {
		return in, err
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return in, err
	}
	return in, nil
}
