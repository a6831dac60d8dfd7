// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/xml"
	"strconv"
)

// SpecColl describes a special collection (mounted, linked, or structured
// file) attached to a data object path. Most requests carry a nil *SpecColl,
// which this package encodes as the empty SpecColl_PI the server expects in
// that case.
type SpecColl struct {
	CollClass     int
	Type          int
	Collection    string
	ObjPath       string
	Resource      string
	RescHier      string
	PhyPath       string
	CacheDir      string
	CacheDirty    int
	SpecCollClass int
}

// appendSpecColl writes a SpecColl_PI for sc, or the sentinel empty element
// if sc is nil.
func appendSpecColl(b *builder, sc *SpecColl) {
	if sc == nil {
		b.tagEmpty("SpecColl_PI")
		return
	}
	b.open("SpecColl_PI")
	b.tagInt("collClass", int64(sc.CollClass))
	b.tagInt("type", int64(sc.Type))
	b.tag("collection", sc.Collection)
	b.tag("objPath", sc.ObjPath)
	b.tag("resource", sc.Resource)
	b.tag("rescHier", sc.RescHier)
	b.tag("phyPath", sc.PhyPath)
	b.tag("cacheDir", sc.CacheDir)
	b.tagInt("cacheDirty", int64(sc.CacheDirty))
	b.tagInt("replNum", int64(sc.SpecCollClass))
	b.close("SpecColl_PI")
}

// decodeSpecColl decodes a SpecColl_PI, returning nil if the server sent the
// empty sentinel element.
func decodeSpecColl(d TokenReader) (*SpecColl, error) {
	const msg = "SpecColl_PI"
	tok, err := d.Token()
	if err != nil {
		return nil, &StateError{Msg: msg, State: "Tag", Found: "read error: " + err.Error()}
	}
	start, ok := tok.(xml.StartElement)
	if !ok || start.Name.Local != "SpecColl_PI" {
		return nil, &StateError{Msg: msg, State: "Tag", Found: "unexpected token"}
	}
	// Peek at the next token: an immediate EndElement means the empty
	// sentinel was sent, i.e. no special collection.
	tok, err = d.Token()
	if err != nil {
		return nil, &StateError{Msg: msg, State: "CollClass", Found: "read error: " + err.Error()}
	}
	if _, ok := tok.(xml.EndElement); ok {
		return nil, nil
	}
	start, ok = tok.(xml.StartElement)
	if !ok || start.Name.Local != "collClass" {
		return nil, &StateError{Msg: msg, State: "CollClass", Found: "unexpected token"}
	}
	sc := &SpecColl{}
	collClass, err := intFieldBody(d, msg, "CollClass")
	if err != nil {
		return nil, err
	}
	sc.CollClass = int(collClass)

	typ, err := intField(d, msg, "Type", "type")
	if err != nil {
		return nil, err
	}
	sc.Type = int(typ)

	sc.Collection, err = textField(d, msg, "Collection", "collection")
	if err != nil {
		return nil, err
	}
	sc.ObjPath, err = textField(d, msg, "ObjPath", "objPath")
	if err != nil {
		return nil, err
	}
	sc.Resource, err = textField(d, msg, "Resource", "resource")
	if err != nil {
		return nil, err
	}
	sc.RescHier, err = textField(d, msg, "RescHier", "rescHier")
	if err != nil {
		return nil, err
	}
	sc.PhyPath, err = textField(d, msg, "PhyPath", "phyPath")
	if err != nil {
		return nil, err
	}
	sc.CacheDir, err = textField(d, msg, "CacheDir", "cacheDir")
	if err != nil {
		return nil, err
	}
	cacheDirty, err := intField(d, msg, "CacheDirty", "cacheDirty")
	if err != nil {
		return nil, err
	}
	sc.CacheDirty = int(cacheDirty)

	replNum, err := intField(d, msg, "ReplNum", "replNum")
	if err != nil {
		return nil, err
	}
	sc.SpecCollClass = int(replNum)

	if err := expectEnd(d, msg, "End"); err != nil {
		return nil, err
	}
	return sc, nil
}

// intFieldBody parses the body of a start element already consumed by the
// caller (used by decodeSpecColl, which must peek ahead of expectStart to
// detect the empty sentinel).
func intFieldBody(d TokenReader, msg, state string) (int64, error) {
	tok, err := d.Token()
	if err != nil {
		return 0, &StateError{Msg: msg, State: state, Found: "read error: " + err.Error()}
	}
	s, err := charDataOrEmpty(tok)
	if err != nil {
		return 0, &StateError{Msg: msg, State: state, Found: err.Error()}
	}
	if s != "" {
		if err := expectEnd(d, msg, state); err != nil {
			return 0, err
		}
	}
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &StateError{Msg: msg, State: state, Found: "integer parse failure: " + err.Error()}
	}
	return n, nil
}

func charDataOrEmpty(tok xml.Token) (string, error) {
	switch t := tok.(type) {
	case xml.EndElement:
		return "", nil
	case xml.CharData:
		return Unescape(string(t))
	default:
		return "", &StateError{Msg: "SpecColl_PI", State: "CollClass", Found: "unexpected token"}
	}
}
