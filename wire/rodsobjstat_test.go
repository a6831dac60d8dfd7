// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import "testing"

func TestDecodeRodsObjStatWithChecksum(t *testing.T) {
	const xmlMsg = `<RodsObjStat_PI><objSize>4096</objSize><objType>1</objType>` +
		`<dataMode>33188</dataMode><dataId>10101</dataId>` +
		`<chksum>3511519306</chksum>` +
		`<ownerName>rods</ownerName><ownerZone>tempZone</ownerZone>` +
		`<createTime>1690000000</createTime><modifyTime>1690000001</modifyTime>` +
		`</RodsObjStat_PI>`

	got, err := DecodeRodsObjStat(decoderFor([]byte(xmlMsg)))
	if err != nil {
		t.Fatalf("DecodeRodsObjStat: %v", err)
	}
	want := RodsObjStat{
		Size:        4096,
		ObjType:     ObjDataObj,
		Mode:        33188,
		ID:          10101,
		Checksum:    3511519306,
		HasChecksum: true,
		OwnerName:   "rods",
		OwnerZone:   "tempZone",
		CreateTime:  1690000000,
		ModifyTime:  1690000001,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeRodsObjStatEmptyChecksum(t *testing.T) {
	const xmlMsg = `<RodsObjStat_PI><objSize>0</objSize><objType>2</objType>` +
		`<dataMode>0</dataMode><dataId>0</dataId>` +
		`<chksum></chksum>` +
		`<ownerName>rods</ownerName><ownerZone>tempZone</ownerZone>` +
		`<createTime>0</createTime><modifyTime>0</modifyTime>` +
		`</RodsObjStat_PI>`

	got, err := DecodeRodsObjStat(decoderFor([]byte(xmlMsg)))
	if err != nil {
		t.Fatalf("DecodeRodsObjStat: %v", err)
	}
	if got.HasChecksum {
		t.Fatalf("HasChecksum = true, want false for an empty chksum element")
	}
	if got.Checksum != 0 {
		t.Fatalf("Checksum = %d, want 0", got.Checksum)
	}
	if got.ObjType != ObjColl {
		t.Fatalf("ObjType = %v, want ObjColl", got.ObjType)
	}
}

func TestDecodeRodsObjStatRejectsInvalidObjType(t *testing.T) {
	const xmlMsg = `<RodsObjStat_PI><objSize>0</objSize><objType>99</objType>` +
		`<dataMode>0</dataMode><dataId>0</dataId><chksum></chksum>` +
		`<ownerName></ownerName><ownerZone></ownerZone>` +
		`<createTime>0</createTime><modifyTime>0</modifyTime>` +
		`</RodsObjStat_PI>`
	if _, err := DecodeRodsObjStat(decoderFor([]byte(xmlMsg))); err == nil {
		t.Fatal("expected an error for an out-of-range objType")
	}
}
