// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "strings"

// EscapedChars is every byte the iRODS XML dialect escapes on output.
const EscapedChars = `&<>"'` + "`"

// AppendEscape appends the escaped form of s to dst and returns the
// extended buffer. Exactly the five named entities amp, lt, gt, quot, and
// apos are produced; the backtick character is escaped to &apos; to match
// the server's own encoder.
func AppendEscape(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		case '"':
			dst = append(dst, "&quot;"...)
		case '\'':
			dst = append(dst, "&apos;"...)
		case '`':
			dst = append(dst, "&apos;"...)
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// Escape returns the escaped form of s. It is a convenience wrapper around
// AppendEscape for callers that are not writing into a reused buffer.
func Escape(s string) string {
	if !strings.ContainsAny(s, EscapedChars) {
		return s
	}
	return string(AppendEscape(make([]byte, 0, len(s)+8), s))
}

// ErrUnknownEntity is returned by Unescape when the input contains an
// entity reference other than the five recognized by this dialect.
type ErrUnknownEntity string

func (e ErrUnknownEntity) Error() string {
	return "wire: unknown entity reference &" + string(e) + ";"
}

// Unescape returns the unescaped form of s. Numeric character references are
// not supported by this dialect; an entity other than amp, lt, gt, quot, or
// apos is a decode error.
func Unescape(s string) (string, error) {
	i := strings.IndexByte(s, '&')
	if i < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		b.WriteString(s[:i])
		s = s[i:]
		semi := strings.IndexByte(s, ';')
		if semi < 0 {
			return "", ErrUnknownEntity(s[1:])
		}
		switch ent := s[1:semi]; ent {
		case "amp":
			b.WriteByte('&')
		case "lt":
			b.WriteByte('<')
		case "gt":
			b.WriteByte('>')
		case "quot":
			b.WriteByte('"')
		case "apos":
			b.WriteByte('\'')
		default:
			return "", ErrUnknownEntity(ent)
		}
		s = s[semi+1:]
		i = strings.IndexByte(s, '&')
		if i < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
	}
}
