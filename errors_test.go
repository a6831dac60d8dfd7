// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import (
	"errors"
	"testing"
)

func TestWrapErrNilPassesThrough(t *testing.T) {
	if err := wrapErr("op", KindTransport, nil); err != nil {
		t.Fatalf("wrapErr with a nil error = %v, want nil", err)
	}
}

func TestWrapErrUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := wrapErr("dial", KindTransport, cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the wrapped cause")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected errors.As to find *Error")
	}
	if e.Kind != KindTransport || e.Op != "dial" {
		t.Fatalf("got Kind=%v Op=%q, want KindTransport/dial", e.Kind, e.Op)
	}
}

func TestServerErrKnownCode(t *testing.T) {
	err := serverErr("stat", -358000)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected errors.As to find *Error")
	}
	if e.Kind != KindServer || e.ServerCode != -358000 {
		t.Fatalf("got Kind=%v ServerCode=%d, want KindServer/-358000", e.Kind, e.ServerCode)
	}
	if e.Err.Error() != "CAT_UNKNOWN_COLLECTION" {
		t.Fatalf("got category %q, want CAT_UNKNOWN_COLLECTION", e.Err.Error())
	}
}

func TestServerErrUnknownCode(t *testing.T) {
	err := serverErr("stat", -999999)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected errors.As to find *Error")
	}
	if e.Err.Error() != "UNKNOWN" {
		t.Fatalf("got category %q, want UNKNOWN", e.Err.Error())
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindTransport: "transport",
		KindFraming:   "framing",
		KindEncoding:  "encoding",
		KindProtocol:  "protocol",
		KindAuth:      "auth",
		KindServer:    "server",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
