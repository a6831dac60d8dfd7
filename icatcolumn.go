// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package irods

// Catalog column codes used to build GenQuery selects and conditions. Not
// exhaustive; additional codes can be passed directly as wire.IcatColumn
// and wire.IcatCond values.
const (
	ColDataName  = 403
	ColDataSize  = 407
	ColDataOwner = 412
	ColCollName  = 501
)
