// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package wire

// GenQueryInp is a catalog query: a set of selected column codes, a set of
// SQL conditions keyed by column code, and a paging cursor. ContinueIndex
// starts at 0 for a fresh query; a non-zero value fetched from the previous
// GenQueryOut resumes it.
type GenQueryInp struct {
	MaxRows         int
	ContinueIndex   int
	PartialStartIdx int
	Selects         []IcatColumn
	Conds           []IcatCond
	Options         []KeyVal
}

// IcatColumn names a selected result column by its numeric catalog code and
// the aggregation applied to it (0 for plain selection).
type IcatColumn struct {
	Code int
	How  int
}

// IcatCond is a single "column code OP value" condition ANDed into the
// query's WHERE clause.
type IcatCond struct {
	Code int
	Op   string
}

// EncodeGenQueryInp writes a GenQueryInp_PI into dst.
func EncodeGenQueryInp(dst []byte, in GenQueryInp) []byte {
	b := newBuilder(dst)
	b.open("GenQueryInp_PI")
	b.tagInt("maxRows", int64(in.MaxRows))
	b.tagInt("continueInx", int64(in.ContinueIndex))
	b.tagInt("partialStartIndex", int64(in.PartialStartIdx))
	b.tagInt("options", 0)

	b.open("KeyValPair_PI")
	b.tagInt("ssLen", int64(len(in.Options)))
	for _, kv := range in.Options {
		b.tag("keyWord", kv.Key)
	}
	for _, kv := range in.Options {
		b.tag("svalue", kv.Value)
	}
	b.close("KeyValPair_PI")

	b.open("InxIvalPair_PI")
	b.tagInt("iiLen", int64(len(in.Selects)))
	for _, s := range in.Selects {
		b.tagInt("inx", int64(s.Code))
	}
	for _, s := range in.Selects {
		b.tagInt("ivalue", int64(s.How))
	}
	b.close("InxIvalPair_PI")

	b.open("InxValPair_PI")
	b.tagInt("isLen", int64(len(in.Conds)))
	for _, c := range in.Conds {
		b.tagInt("inx", int64(c.Code))
	}
	for _, c := range in.Conds {
		b.tag("svalue", c.Op)
	}
	b.close("InxValPair_PI")

	b.close("GenQueryInp_PI")
	return b.bytes()
}

// GenQueryRow is a single result row: values in the same order as the
// GenQueryInp's Selects.
type GenQueryRow []string

// GenQueryOut is one page of query results. A ContinueIndex of 0 means the
// server has no further rows.
type GenQueryOut struct {
	RowCount      int
	AttrCount     int
	ContinueIndex int
	TotalRowCount int
	Rows          []GenQueryRow
}

// DecodeGenQueryOut decodes a GenQueryOut_PI. The column layout is
// rowCnt/attriCnt followed by attriCnt SqlResult_PI blocks, each carrying
// rowCnt string values; this decoder transposes that column-major wire
// layout into row-major Rows for callers.
func DecodeGenQueryOut(d TokenReader) (GenQueryOut, error) {
	const msg = "GenQueryOut_PI"
	var out GenQueryOut

	if err := expectStart(d, msg, "Tag", "GenQueryOut_PI"); err != nil {
		return out, err
	}
	rowCnt, err := intField(d, msg, "RowCnt", "rowCnt")
	if err != nil {
		return out, err
	}
	out.RowCount = int(rowCnt)

	attriCnt, err := intField(d, msg, "AttriCnt", "attriCnt")
	if err != nil {
		return out, err
	}
	out.AttrCount = int(attriCnt)

	continueInx, err := intField(d, msg, "ContinueInx", "continueInx")
	if err != nil {
		return out, err
	}
	out.ContinueIndex = int(continueInx)

	totalRowCount, err := intField(d, msg, "TotalRowCount", "totalRowCount")
	if err != nil {
		return out, err
	}
	out.TotalRowCount = int(totalRowCount)

	out.Rows = make([]GenQueryRow, out.RowCount)
	for i := range out.Rows {
		out.Rows[i] = make(GenQueryRow, out.AttrCount)
	}
	for col := 0; col < out.AttrCount; col++ {
		if err := expectStart(d, msg, "SqlResult", "SqlResult_PI"); err != nil {
			return out, err
		}
		if _, err := intField(d, msg, "AttriInx", "attriInx"); err != nil {
			return out, err
		}
		resLen, err := intField(d, msg, "ResLen", "reslen")
		if err != nil {
			return out, err
		}
		for row := 0; row < out.RowCount; row++ {
			v, err := textField(d, msg, "Value", "value")
			if err != nil {
				return out, err
			}
			out.Rows[row][col] = v
		}
		_ = resLen
		if err := expectEnd(d, msg, "SqlResultEnd"); err != nil {
			return out, err
		}
	}
	if err := expectEnd(d, msg, "End"); err != nil {
		return out, err
	}
	return out, nil
}
