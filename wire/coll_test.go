// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestEncodeCollInp(t *testing.T) {
	in := CollInp{
		CollName:  "/tempZone/home/rods/sub",
		Flags:     0,
		OprType:   0,
		CondInput: []KeyVal{{Key: "recursiveOpr", Value: ""}},
	}
	encoded := string(EncodeCollInp(nil, in))
	for _, want := range []string{
		"<CollInpNew_PI>", "<collName>/tempZone/home/rods/sub</collName>",
		"<flags>0</flags>", "<oprType>0</oprType>",
		"<KeyValPair_PI>", "recursiveOpr",
	} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded CollInpNew_PI missing %q; got %s", want, encoded)
		}
	}
}

func TestDecodeCollOprStat(t *testing.T) {
	const xmlMsg = `<CollOprStat_PI><filesCnt>3</filesCnt><totalFileCnt>10</totalFileCnt>` +
		`<bytesWritten>40960</bytesWritten><lastObjPath>/tempZone/home/rods/sub/c.txt</lastObjPath>` +
		`</CollOprStat_PI>`

	got, err := DecodeCollOprStat(decoderFor([]byte(xmlMsg)))
	if err != nil {
		t.Fatalf("DecodeCollOprStat: %v", err)
	}
	want := CollOprStat{
		FilesCnt:     3,
		TotalFileCnt: 10,
		BytesWritten: 40960,
		LastObjPath:  "/tempZone/home/rods/sub/c.txt",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCollOprStatReplySentinelMatchesProgressReplyConstant(t *testing.T) {
	want := binary.BigEndian.Uint32(CollOprStatReplySentinel[:])
	if want != uint32(CollStatProgressReply) {
		t.Fatalf("CollOprStatReplySentinel decodes to %d, want CollStatProgressReply (%d)", want, CollStatProgressReply)
	}
}
