// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "strconv"

// GeneralAdminInp is the ten-argument request body behind every admin
// operation (useradmin, mkuser, rmuser, moduser, mkresc, rmresc, and so on).
// The server dispatches on Args[0]; the remaining slots are interpreted
// according to that subcommand.
type GeneralAdminInp struct {
	Args [10]string
}

// EncodeGeneralAdminInp writes a GeneralAdminInp_PI into dst.
func EncodeGeneralAdminInp(dst []byte, in GeneralAdminInp) []byte {
	b := newBuilder(dst)
	b.open("GeneralAdminInp_PI")
	for i, a := range in.Args {
		b.tag("arg"+strconv.Itoa(i), a)
	}
	b.close("GeneralAdminInp_PI")
	return b.bytes()
}
