// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

import "fmt"

// Kind classifies an Error by the layer of the client that produced it.
type Kind int

// The kinds of error this package can return.
const (
	// KindTransport covers socket IO, TLS handshake, and timeout failures.
	KindTransport Kind = iota
	// KindFraming covers truncated reads, oversized headers, and short bodies.
	KindFraming
	// KindEncoding covers unexpected tags, unescape failures, and parse
	// failures while decoding a wire message.
	KindEncoding
	// KindProtocol covers unexpected message kinds, unsupported release
	// versions, and cs-neg mismatches.
	KindProtocol
	// KindAuth covers an authentication challenge the client cannot use (a
	// request_result too short to hold the 16-byte signature). An
	// authentication round trip the server rejects is reported as
	// KindServer.
	KindAuth
	// KindServer wraps a negative int_info the server returned in a reply
	// header, carrying the iRODS error code in ServerCode.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindFraming:
		return "framing"
	case KindEncoding:
		return "encoding"
	case KindProtocol:
		return "protocol"
	case KindAuth:
		return "auth"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the error type returned by Session operations in this package.
// The pool, transfer, and query sub-packages pass such errors through, but
// may also return other errors (a context error, or a transfer error that
// wraps the failing stripe's range).
type Error struct {
	Kind Kind
	// ServerCode is the server's int_info when Kind is KindServer; zero
	// otherwise.
	ServerCode int32
	Op         string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindServer {
		return fmt.Sprintf("irods: %s: %s: server error %d: %v", e.Op, e.Kind, e.ServerCode, e.Err)
	}
	return fmt.Sprintf("irods: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// serverErr builds an Error from a reply header whose IntInfo the caller has
// already determined to be a failure code.
func serverErr(op string, code int32) error {
	cat, ok := serverCategory[code]
	if !ok {
		cat = "UNKNOWN"
	}
	return &Error{Kind: KindServer, Op: op, ServerCode: code, Err: fmt.Errorf("%s", cat)}
}

// serverCategory maps a handful of common iRODS error codes to their symbolic
// error names. It is an exact-code lookup, not a lookup by code range, and it
// is not exhaustive; codes absent from this table still
// surface with Kind KindServer and their raw ServerCode.
var serverCategory = map[int32]string{
	-157000: "SYS_NO_API_PRIV",
	-305000: "CAT_NO_ROWS_FOUND",
	-310000: "CAT_INVALID_USER",
	-337000: "CAT_NAME_EXISTS_AS_COLLECTION",
	-358000: "CAT_UNKNOWN_COLLECTION",
	-826000: "USER_FILE_DOES_NOT_EXIST",
	-827000: "USER_INPUT_PATH_ERR",
	-903000: "SYS_INVALID_INPUT_PARAM",
	-1000:   "CAT_INVALID_CLIENT_USER",
}
