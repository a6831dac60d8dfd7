// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "strconv"

// ModAVUMetaDataInp is the ten-argument request body for adding, removing,
// and setting AVU (attribute/value/unit) triples on catalog objects. As with
// GeneralAdminInp, the server dispatches on Args[0] ("add", "rm", "set").
type ModAVUMetaDataInp struct {
	Args [10]string
}

// EncodeModAVUMetaDataInp writes a ModAVUMetaDataInp_PI into dst.
func EncodeModAVUMetaDataInp(dst []byte, in ModAVUMetaDataInp) []byte {
	b := newBuilder(dst)
	b.open("ModAVUMetaDataInp_PI")
	for i, a := range in.Args {
		b.tag("arg"+strconv.Itoa(i), a)
	}
	b.close("ModAVUMetaDataInp_PI")
	return b.bytes()
}
