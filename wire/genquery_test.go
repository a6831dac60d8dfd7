// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"
	"strings"
	"testing"
)

func TestEncodeGenQueryInpContainsSelectsAndConds(t *testing.T) {
	in := GenQueryInp{
		MaxRows:       256,
		ContinueIndex: 0,
		Selects:       []IcatColumn{{Code: 403, How: 0}, {Code: 407, How: 0}},
		Conds:         []IcatCond{{Code: 501, Op: "= 'home'"}},
	}
	encoded := string(EncodeGenQueryInp(nil, in))
	for _, want := range []string{
		"<GenQueryInp_PI>", "<maxRows>256</maxRows>",
		"<InxIvalPair_PI>", "<inx>403</inx>", "<inx>407</inx>",
		"<InxValPair_PI>", "<inx>501</inx>", "= &apos;home&apos;",
	} {
		if !strings.Contains(encoded, want) {
			t.Errorf("encoded GenQueryInp_PI missing %q; got %s", want, encoded)
		}
	}
}

func TestDecodeGenQueryOutTransposesColumnsToRows(t *testing.T) {
	const xmlMsg = `<GenQueryOut_PI><rowCnt>2</rowCnt><attriCnt>2</attriCnt>` +
		`<continueInx>0</continueInx><totalRowCount>2</totalRowCount>` +
		`<SqlResult_PI><attriInx>403</attriInx><reslen>64</reslen>` +
		`<value>foo.txt</value><value>bar.txt</value></SqlResult_PI>` +
		`<SqlResult_PI><attriInx>407</attriInx><reslen>64</reslen>` +
		`<value>100</value><value>200</value></SqlResult_PI>` +
		`</GenQueryOut_PI>`

	got, err := DecodeGenQueryOut(decoderFor([]byte(xmlMsg)))
	if err != nil {
		t.Fatalf("DecodeGenQueryOut: %v", err)
	}
	want := GenQueryOut{
		RowCount:      2,
		AttrCount:     2,
		ContinueIndex: 0,
		TotalRowCount: 2,
		Rows: []GenQueryRow{
			{"foo.txt", "100"},
			{"bar.txt", "200"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
