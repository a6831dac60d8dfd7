// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// KeyVal is a single key/value pair as carried in a KeyValPair_PI. Most
// condition-input and option blocks in the protocol are just a count plus a
// run of these.
type KeyVal struct {
	Key   string
	Value string
}

// AppendKeyValPair writes a KeyValPair_PI: a count of pairs, then that many
// keyWord/svalue elements in order.
func AppendKeyValPair(dst []byte, kv []KeyVal) []byte {
	b := newBuilder(dst)
	b.open("KeyValPair_PI")
	b.tagInt("ssLen", int64(len(kv)))
	for _, p := range kv {
		b.tag("keyWord", p.Key)
	}
	for _, p := range kv {
		b.tag("svalue", p.Value)
	}
	b.close("KeyValPair_PI")
	return b.bytes()
}

// DecodeKeyValPair decodes a KeyValPair_PI into a freshly allocated slice.
func DecodeKeyValPair(d TokenReader) ([]KeyVal, error) {
	const msg = "KeyValPair_PI"
	if err := expectStart(d, msg, "Tag", "KeyValPair_PI"); err != nil {
		return nil, err
	}
	n, err := intField(d, msg, "SSLen", "ssLen")
	if err != nil {
		return nil, err
	}
	kv := make([]KeyVal, n)
	for i := range kv {
		kv[i].Key, err = textField(d, msg, "KeyWord", "keyWord")
		if err != nil {
			return nil, err
		}
	}
	for i := range kv {
		kv[i].Value, err = textField(d, msg, "SValue", "svalue")
		if err != nil {
			return nil, err
		}
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return nil, err
	}
	return kv, nil
}

// appendKeyValPairInline writes a complete KeyValPair_PI element into an
// existing builder, for embedding inside a parent message that is still
// being built (e.g. DataObjInp_PI's "KeyValPair_PI" child).
func appendKeyValPairInline(b *builder, kv []KeyVal) {
	b.open("KeyValPair_PI")
	b.tagInt("ssLen", int64(len(kv)))
	for _, p := range kv {
		b.tag("keyWord", p.Key)
	}
	for _, p := range kv {
		b.tag("svalue", p.Value)
	}
	b.close("KeyValPair_PI")
}
