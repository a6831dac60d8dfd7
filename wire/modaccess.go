// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// ModAccessControl is the request body behind ichmod-style ACL changes.
type ModAccessControl struct {
	Recursive   bool
	AccessLevel string
	UserName    string
	Zone        string
	Path        string
}

// EncodeModAccessControl writes a modAccessControl_PI into dst.
func EncodeModAccessControl(dst []byte, in ModAccessControl) []byte {
	b := newBuilder(dst)
	b.open("modAccessControl_PI")
	recursive := 0
	if in.Recursive {
		recursive = 1
	}
	b.tagInt("recursiveFlag", int64(recursive))
	b.tag("accessLevel", in.AccessLevel)
	b.tag("userName", in.UserName)
	b.tag("zone", in.Zone)
	b.tag("path", in.Path)
	b.close("modAccessControl_PI")
	return b.bytes()
}
