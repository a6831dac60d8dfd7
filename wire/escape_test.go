// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "testing"

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		`a & b < c > d "quoted" 'single'`,
		"éè unicode stays untouched",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			got, err := Unescape(Escape(s))
			if err != nil {
				t.Fatalf("Unescape(Escape(%q)) returned error: %v", s, err)
			}
			if got != s {
				t.Errorf("round trip mismatch: got %q, want %q", got, s)
			}
		})
	}
}

// The backtick quirk is intentionally lossy: it escapes to the same entity
// as a single quote, so it does not survive a round trip as itself.
func TestEscapeBacktickBecomesApos(t *testing.T) {
	got := Escape("a`b")
	want := "a&apos;b"
	if got != want {
		t.Fatalf("Escape(\"a`b\") = %q, want %q", got, want)
	}
	unescaped, err := Unescape(got)
	if err != nil {
		t.Fatalf("Unescape returned error: %v", err)
	}
	if unescaped != "a'b" {
		t.Fatalf("Unescape(%q) = %q, want %q", got, unescaped, "a'b")
	}
}

func TestUnescapeUnknownEntity(t *testing.T) {
	_, err := Unescape("foo &frac12; bar")
	if err == nil {
		t.Fatal("expected an error for an unrecognized entity")
	}
	if _, ok := err.(ErrUnknownEntity); !ok {
		t.Fatalf("expected ErrUnknownEntity, got %T: %v", err, err)
	}
}

func TestAppendEscapeAllFive(t *testing.T) {
	got := Escape(`&<>"'`)
	want := "&amp;&lt;&gt;&quot;&apos;"
	if got != want {
		t.Fatalf("Escape = %q, want %q", got, want)
	}
}
