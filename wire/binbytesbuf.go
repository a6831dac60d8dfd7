// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// BinBytesBuf carries an opaque byte buffer base64-encoded inside a single
// text field. Native auth's challenge and response payloads are both wrapped
// in one of these.
type BinBytesBuf struct {
	Buf []byte
}

// EncodeBinBytesBuf writes a BinBytesBuf_PI whose buf element holds
// base64-encoded b.
func EncodeBinBytesBuf(dst []byte, b []byte) []byte {
	bd := newBuilder(dst)
	bd.open("BinBytesBuf_PI")
	bd.tagInt("buflen", int64(base64EncodedLen(len(b))))
	bd.open("buf")
	bd.buf = appendBase64(bd.buf, b)
	bd.close("buf")
	bd.close("BinBytesBuf_PI")
	return bd.bytes()
}

// DecodeBinBytesBuf decodes a BinBytesBuf_PI, base64-decoding its buf
// element.
func DecodeBinBytesBuf(d TokenReader) (BinBytesBuf, error) {
	const msg = "BinBytesBuf_PI"
	var out BinBytesBuf

	if err := expectStart(d, msg, "Tag", "BinBytesBuf_PI"); err != nil {
		return out, err
	}
	if _, err := intField(d, msg, "BufLen", "buflen"); err != nil {
		return out, err
	}
	encoded, err := textField(d, msg, "Buf", "buf")
	if err != nil {
		return out, err
	}
	out.Buf, err = decodeBase64(encoded)
	if err != nil {
		return out, &StateError{Msg: msg, State: "Buf", Found: err.Error()}
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return out, err
	}
	return out, nil
}
