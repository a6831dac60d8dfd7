// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

// OpenFlag is a bitmask of flags passed to Open, mirroring the POSIX open(2)
// flags the server expects encoded in DataObjInp's openFlags field.
type OpenFlag int32

// The open flags the server recognizes.
const (
	ReadOnly  OpenFlag = 0
	WriteOnly OpenFlag = 1
	ReadWrite OpenFlag = 2
	Create    OpenFlag = 0o100
	Truncate  OpenFlag = 0o1000
)

// OprType classifies the intent behind a DataObjInp request beyond plain
// open/stat; most operations pass OprNone.
type OprType int32

// The operation types the server distinguishes in DataObjInp's oprType
// field.
const (
	OprNone OprType = 0
	OprPut  OprType = 1
	OprGet  OprType = 2
)

// Whence selects the reference point for Seek, mirroring io.Seeker's
// constants under the server's own names.
type Whence int32

// The seek origins the server recognizes.
const (
	SeekSet Whence = 0
	SeekCur Whence = 1
	SeekEnd Whence = 2
)

// DataObjectHandle identifies an open data object for the lifetime of the
// Session that opened it. It is only meaningful on the Session that
// produced it via Open.
type DataObjectHandle int32
