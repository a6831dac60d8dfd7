// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"mellium.im/xmlstream"
)

// TokenReader and TokenWriter are the event-stream primitives the state
// machines in this package are built on. They are aliases of
// mellium.im/xmlstream's interfaces (themselves satisfied by
// encoding/xml.Decoder and encoding/xml.Encoder) so that callers already
// holding an xmlstream.TokenReader/TokenWriter — such as a Session mid
// stream — can feed it directly into Decode/Encode without an adapter.
type (
	TokenReader = xmlstream.TokenReader
	TokenWriter = xmlstream.TokenWriter
)

// StateError reports that a decoder was in some named state when it
// received a token it could not handle, or ran out of input.
type StateError struct {
	Msg   string // message element name, e.g. "RodsObjStat_PI"
	State string // name of the state enum member that failed
	Found string // a description of what was actually found
}

func (e *StateError) Error() string {
	return fmt.Sprintf("wire: decoding %s: in state %s: %s", e.Msg, e.State, e.Found)
}

// builder accumulates an encoded message into a caller-supplied buffer,
// always starting at offset 0 and never reading prior contents.
type builder struct {
	buf []byte
}

func newBuilder(dst []byte) *builder {
	return &builder{buf: dst[:0]}
}

func (b *builder) open(name string) {
	b.buf = append(b.buf, '<')
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, '>')
}

func (b *builder) close(name string) {
	b.buf = append(b.buf, "</"...)
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, '>')
}

// tag writes <name>escape(value)</name>.
func (b *builder) tag(name, value string) {
	b.open(name)
	b.buf = AppendEscape(b.buf, value)
	b.close(name)
}

// tagInt writes <name>value</name> for an integer field (no escaping needed).
func (b *builder) tagInt(name string, value int64) {
	b.open(name)
	b.buf = strconv.AppendInt(b.buf, value, 10)
	b.close(name)
}

// tagEmpty writes <name></name>, used for elements that the dialect allows
// to be empty (e.g. the SpecColl_PI sentinel for "no special collection").
func (b *builder) tagEmpty(name string) {
	b.buf = append(b.buf, '<')
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, "></"...)
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, '>')
}

func (b *builder) bytes() []byte { return b.buf }

// expectStart reads the next token from d and requires it to be a start
// element named local. Any other token (including io.EOF) is reported as a
// StateError naming msg/state.
func expectStart(d TokenReader, msg, state, local string) error {
	tok, err := d.Token()
	if err != nil {
		return &StateError{Msg: msg, State: state, Found: "read error: " + err.Error()}
	}
	start, ok := tok.(xml.StartElement)
	if !ok || start.Name.Local != local {
		return &StateError{Msg: msg, State: state, Found: fmt.Sprintf("token %#v", tok)}
	}
	return nil
}

// expectEnd reads the next token and requires it to be an end element. It
// closes a field after non-empty text content (textField already consumes
// the EndElement itself for an empty element) and closes each message's
// outer element.
func expectEnd(d TokenReader, msg, state string) error {
	tok, err := d.Token()
	if err != nil {
		return &StateError{Msg: msg, State: state, Found: "read error: " + err.Error()}
	}
	if _, ok := tok.(xml.EndElement); !ok {
		return &StateError{Msg: msg, State: state, Found: fmt.Sprintf("token %#v", tok)}
	}
	return nil
}

// textField reads <local>text</local> in one step: start tag, text (or
// empty), end tag.
func textField(d TokenReader, msg, state, local string) (string, error) {
	if err := expectStart(d, msg, state, local); err != nil {
		return "", err
	}
	tok, err := d.Token()
	if err != nil {
		return "", &StateError{Msg: msg, State: state, Found: "read error: " + err.Error()}
	}
	switch t := tok.(type) {
	case xml.EndElement:
		return "", nil
	case xml.CharData:
		s, err := Unescape(string(t))
		if err != nil {
			return "", &StateError{Msg: msg, State: state, Found: err.Error()}
		}
		return s, expectEnd(d, msg, state)
	default:
		return "", &StateError{Msg: msg, State: state, Found: fmt.Sprintf("token %#v", tok)}
	}
}

// intField reads <local>123</local> and parses the body as a signed
// integer.
func intField(d TokenReader, msg, state, local string) (int64, error) {
	s, err := textField(d, msg, state, local)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &StateError{Msg: msg, State: state, Found: "integer parse failure: " + err.Error()}
	}
	return n, nil
}

// uintField is intField for fields the dialect never sends negative.
func uintField(d TokenReader, msg, state, local string) (uint64, error) {
	s, err := textField(d, msg, state, local)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &StateError{Msg: msg, State: state, Found: "integer parse failure: " + err.Error()}
	}
	return n, nil
}
