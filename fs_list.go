// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package irods

import (
	"context"
	"fmt"

	"go.irods.dev/client/query"
	"go.irods.dev/client/wire"
)

// Entry is a single row of a List result: a data object's name and size
// within the listed collection.
type Entry struct {
	Name string
	Size int64
}

// List returns a lazy sequence of the data objects directly inside coll
// (non-recursive).
func (s *Session) List(ctx context.Context, coll string) *query.Rows {
	return s.Query(ctx, GenQuery{
		Selects: []wire.IcatColumn{
			{Code: ColDataName},
			{Code: ColDataSize},
		},
		Conds: []wire.IcatCond{
			{Code: ColCollName, Op: fmt.Sprintf("= '%s'", coll)},
		},
	})
}

// DecodeEntry converts a raw Row from List into an Entry.
func DecodeEntry(row query.Row) (Entry, error) {
	if len(row) < 2 {
		return Entry{}, fmt.Errorf("irods: list row has %d columns, want 2", len(row))
	}
	var size int64
	if _, err := fmt.Sscan(row[1], &size); err != nil {
		return Entry{}, err
	}
	return Entry{Name: row[0], Size: size}, nil
}
