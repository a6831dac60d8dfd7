// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"strings"
	"testing"
)

func TestNativeDigestFixedVector(t *testing.T) {
	requestResult := strings.Repeat("X", 256)
	const password = "rods"
	const wantDigest = "jcH7bFT/PmS+AgYao35y5Q=="

	got := nativeDigest(requestResult, password)
	if got != wantDigest {
		t.Fatalf("nativeDigest(...) = %q, want %q", got, wantDigest)
	}

	signature := requestResult[:16]
	if signature != strings.Repeat("X", 16) {
		t.Fatalf("signature = %q, want 16 X's", signature)
	}
}

func TestNativeDigestPasswordLongerThan50Bytes(t *testing.T) {
	requestResult := strings.Repeat("Y", 64)
	long := strings.Repeat("p", 64)
	// nativeDigest copies into a fixed 50-byte array; a password of 64
	// bytes is silently truncated to the first 50 by copy's semantics.
	got := nativeDigest(requestResult, long)
	want := nativeDigest(requestResult, long[:50])
	if got != want {
		t.Fatalf("nativeDigest with an over-length password should match the 50-byte truncation, got %q want %q", got, want)
	}
}
