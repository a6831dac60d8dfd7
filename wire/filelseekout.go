// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// FileLseekOut is the reply to a seek request: the resulting absolute
// offset.
type FileLseekOut struct {
	Offset int64
}

// DecodeFileLseekOut decodes a fileLseekOut_PI.
func DecodeFileLseekOut(d TokenReader) (FileLseekOut, error) {
	const msg = "fileLseekOut_PI"
	var out FileLseekOut

	if err := expectStart(d, msg, "Tag", "fileLseekOut_PI"); err != nil {
		return out, err
	}
	var err error
	out.Offset, err = intField(d, msg, "Offset", "offset")
	if err != nil {
		return out, err
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return out, err
	}
	return out, nil
}
