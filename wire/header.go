// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "fmt"

// MsgType is the header's "type" field: which kind of message follows.
type MsgType string

// The message kinds the server recognizes in MsgHeader_PI's type field.
const (
	MsgConnect    MsgType = "RODS_CONNECT"
	MsgVersion    MsgType = "RODS_VERSION"
	MsgAPIReq     MsgType = "RODS_API_REQ"
	MsgAPIReply   MsgType = "RODS_API_REPLY"
	MsgCSNeg      MsgType = "RODS_CS_NEG_T"
	MsgDisconnect MsgType = "RODS_DISCONNECT"
)

// MaxHeaderLen bounds the size of the length-prefixed header for the XML
// dialect (spec: at least 1024 bytes).
const MaxHeaderLen = 1024

// StandardHeader is the five-field header that precedes every message body.
// Its three length fields always sum to the number of payload bytes that
// immediately follow it on the wire.
type StandardHeader struct {
	Type     MsgType
	MsgLen   int
	ErrorLen int
	BsLen    int
	IntInfo  int32
}

// EncodeHeader writes a MsgHeader_PI into dst starting at offset 0 and
// returns the encoded bytes.
func EncodeHeader(dst []byte, h StandardHeader) []byte {
	b := newBuilder(dst)
	b.open("MsgHeader_PI")
	b.tag("type", string(h.Type))
	b.tagInt("msgLen", int64(h.MsgLen))
	b.tagInt("bsLen", int64(h.BsLen))
	b.tagInt("errorLen", int64(h.ErrorLen))
	b.tagInt("intInfo", int64(h.IntInfo))
	b.close("MsgHeader_PI")
	return b.bytes()
}

// DecodeHeader decodes a MsgHeader_PI from src using an explicit state
// machine over the XML token stream.
func DecodeHeader(d TokenReader) (StandardHeader, error) {
	const msg = "MsgHeader_PI"
	var h StandardHeader

	if err := expectStart(d, msg, "Tag", "MsgHeader_PI"); err != nil {
		return h, err
	}
	typ, err := textField(d, msg, "Type", "type")
	if err != nil {
		return h, err
	}
	switch MsgType(typ) {
	case MsgConnect, MsgVersion, MsgAPIReq, MsgAPIReply, MsgCSNeg, MsgDisconnect:
		h.Type = MsgType(typ)
	default:
		return h, &StateError{Msg: msg, State: "Type", Found: fmt.Sprintf("unrecognized msgType %q", typ)}
	}

	msgLen, err := intField(d, msg, "MsgLen", "msgLen")
	if err != nil {
		return h, err
	}
	h.MsgLen = int(msgLen)

	bsLen, err := intField(d, msg, "BsLen", "bsLen")
	if err != nil {
		return h, err
	}
	h.BsLen = int(bsLen)

	errLen, err := intField(d, msg, "ErrorLen", "errorLen")
	if err != nil {
		return h, err
	}
	h.ErrorLen = int(errLen)

	intInfo, err := intField(d, msg, "IntInfo", "intInfo")
	if err != nil {
		return h, err
	}
	h.IntInfo = int32(intInfo)

	if err := expectEnd(d, msg, "End"); err != nil {
		return h, err
	}
	return h, nil
}
