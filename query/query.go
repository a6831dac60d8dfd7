// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package query implements GenQuery paging: a lazy, restartable row
// sequence that transparently fetches the next page as the current one is
// drained.
package query // import "go.irods.dev/client/query"

import (
	"context"

	"go.irods.dev/client/wire"
)

// Conn is the narrow slice of a Session a Rows needs: send a GenQueryInp
// and get back the decoded GenQueryOut page. Defined here, rather than
// depending on the root package's Session directly, so this package has no
// import cycle back to it; the root package adapts *Session to this
// interface.
type Conn interface {
	GenQuery(ctx context.Context, in wire.GenQueryInp) (wire.GenQueryOut, error)
}

// Row is one result row, its values ordered the same as the Query's
// Selects.
type Row = wire.GenQueryRow

// Rows iterates the paged results of a catalog query. The zero value is not
// usable; construct one with New.
type Rows struct {
	conn Conn
	ctx  context.Context
	in   wire.GenQueryInp

	page []Row
	idx  int

	done bool
	err  error
}

// New starts a query. The first page is not fetched until the first call to
// Next.
func New(ctx context.Context, conn Conn, in wire.GenQueryInp) *Rows {
	return &Rows{conn: conn, ctx: ctx, in: in}
}

// Next advances to the next row, fetching a new page from the server when
// the current one is exhausted. It returns false when the query is
// exhausted or an error occurred; callers should check Err afterward.
func (r *Rows) Next() bool {
	if r.err != nil || r.done {
		return false
	}
	for r.idx >= len(r.page) {
		if r.page != nil && r.in.ContinueIndex == 0 {
			r.done = true
			return false
		}
		out, err := r.conn.GenQuery(r.ctx, r.in)
		if err != nil {
			r.err = err
			return false
		}
		r.page = out.Rows
		r.idx = 0
		r.in.ContinueIndex = out.ContinueIndex
		if len(r.page) == 0 {
			r.done = true
			return false
		}
	}
	r.idx++
	return true
}

// Row returns the row most recently advanced to by Next.
func (r *Rows) Row() Row {
	if r.idx == 0 || r.idx > len(r.page) {
		return nil
	}
	return r.page[r.idx-1]
}

// Err returns the first error encountered while paging, if any.
func (r *Rows) Err() error {
	return r.err
}
