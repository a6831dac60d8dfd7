// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package irods

import (
	"context"

	"go.irods.dev/client/query"
	"go.irods.dev/client/wire"
)

// GenQuery describes a catalog query: which columns to select and what
// conditions to apply. MaxRows bounds the page size the server returns per
// round trip; it does not bound the total result count, which Rows pages
// through transparently.
type GenQuery struct {
	MaxRows int
	Selects []wire.IcatColumn
	Conds   []wire.IcatCond
}

// Query starts a lazy, restartable row sequence over q. The first network
// round trip happens on the first call to Rows.Next, not here.
func (s *Session) Query(ctx context.Context, q GenQuery) *query.Rows {
	in := wire.GenQueryInp{
		MaxRows: q.MaxRows,
		Selects: q.Selects,
		Conds:   q.Conds,
	}
	if in.MaxRows == 0 {
		in.MaxRows = 256
	}
	return query.New(ctx, sessionQueryAdapter{s}, in)
}

// sessionQueryAdapter satisfies query.Conn without exposing apiRequestRaw
// (and the rest of Session's low-level surface) as part of the query
// package's contract.
type sessionQueryAdapter struct{ s *Session }

func (a sessionQueryAdapter) GenQuery(ctx context.Context, in wire.GenQueryInp) (wire.GenQueryOut, error) {
	body := wire.EncodeGenQueryInp(make([]byte, 0, a.s.cfg.BufSize), in)
	h, msg, _, err := a.s.apiRequestRaw(ctx, "genquery", apnGenQuery, body, nil)
	if err != nil {
		return wire.GenQueryOut{}, err
	}
	// A negative IntInfo here commonly means CAT_NO_ROWS_FOUND on an empty
	// result set rather than a genuine failure; Rows treats it as a clean
	// end of stream.
	if h.IntInfo < 0 {
		return wire.GenQueryOut{}, nil
	}
	out, err := wire.DecodeGenQueryOut(msgDecoder(msg))
	if err != nil {
		return wire.GenQueryOut{}, wrapErr("genquery", KindEncoding, err)
	}
	return out, nil
}
