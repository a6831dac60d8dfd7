// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "strconv"

// Protocol identifies the wire encoding requested in a StartupPack.
type Protocol int

// The two protocol encodings the server understands. Only XML is
// implemented by this module; ProtoNative is defined but never sent, since
// the handshake always requests ProtoXML.
const (
	ProtoXML Protocol = iota
	ProtoNative
)

// StartupPack is the first message sent on a fresh connection.
type StartupPack struct {
	Proto       Protocol
	ReconnFlag  int
	ConnectCnt  int
	ProxyUser   string
	ProxyZone   string
	ClientUser  string
	ClientZone  string
	RelVersion  [3]int // major, minor, patch -> "rodsM.m.p"
	APIVersion  string
	Option      string
}

// EncodeStartupPack writes a StartupPack_PI into dst starting at offset 0.
func EncodeStartupPack(dst []byte, p StartupPack) []byte {
	b := newBuilder(dst)
	b.open("StartupPack_PI")
	b.tagInt("irodsProt", int64(p.Proto))
	b.tagInt("reconnFlag", int64(p.ReconnFlag))
	b.tagInt("connectCnt", int64(p.ConnectCnt))
	b.tag("proxyUser", p.ProxyUser)
	b.tag("proxyRcatZone", p.ProxyZone)
	b.tag("clientUser", p.ClientUser)
	b.tag("clientRcatZone", p.ClientZone)
	b.open("relVersion")
	b.buf = appendRelVersion(b.buf, p.RelVersion)
	b.close("relVersion")
	b.tag("apiVersion", p.APIVersion)
	b.tag("option", p.Option)
	b.close("StartupPack_PI")
	return b.bytes()
}

func appendRelVersion(dst []byte, v [3]int) []byte {
	dst = append(dst, "rods"...)
	for i, n := range v {
		if i > 0 {
			dst = append(dst, '.')
		}
		dst = strconv.AppendInt(dst, int64(n), 10)
	}
	return dst
}
