// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "encoding/base64"

// base64EncodedLen returns the length of the standard base64 encoding of n
// raw bytes.
func base64EncodedLen(n int) int {
	return base64.StdEncoding.EncodedLen(n)
}

// appendBase64 appends the standard base64 encoding of b to dst.
func appendBase64(dst, b []byte) []byte {
	n := len(dst)
	dst = grow(dst, n+base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(dst[n:], b)
	return dst
}

// decodeBase64 decodes a standard base64 string.
func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
