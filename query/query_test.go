// Copyright 2021 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package query_test

import (
	"context"
	"errors"
	"testing"

	"go.irods.dev/client/query"
	"go.irods.dev/client/wire"
)

// fakeConn replays a fixed sequence of pages, one per call to GenQuery,
// regardless of the GenQueryInp it's called with.
type fakeConn struct {
	pages []wire.GenQueryOut
	calls int
	err   error
}

func (f *fakeConn) GenQuery(ctx context.Context, in wire.GenQueryInp) (wire.GenQueryOut, error) {
	if f.err != nil {
		return wire.GenQueryOut{}, f.err
	}
	if f.calls >= len(f.pages) {
		return wire.GenQueryOut{}, nil
	}
	out := f.pages[f.calls]
	f.calls++
	return out, nil
}

func TestRowsSinglePage(t *testing.T) {
	conn := &fakeConn{pages: []wire.GenQueryOut{
		{ContinueIndex: 0, Rows: []query.Row{{"a"}, {"b"}, {"c"}}},
	}}
	r := query.New(context.Background(), conn, wire.GenQueryInp{})

	var got []string
	for r.Next() {
		got = append(got, r.Row()[0])
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v rows, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	if conn.calls != 1 {
		t.Fatalf("GenQuery called %d times, want 1", conn.calls)
	}
}

func TestRowsMultiplePages(t *testing.T) {
	conn := &fakeConn{pages: []wire.GenQueryOut{
		{ContinueIndex: 42, Rows: []query.Row{{"a"}, {"b"}}},
		{ContinueIndex: 0, Rows: []query.Row{{"c"}}},
	}}
	r := query.New(context.Background(), conn, wire.GenQueryInp{})

	var got []string
	for r.Next() {
		got = append(got, r.Row()[0])
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v, want [a b c]", got)
	}
	if conn.calls != 2 {
		t.Fatalf("GenQuery called %d times, want 2", conn.calls)
	}
}

func TestRowsEmptyResult(t *testing.T) {
	conn := &fakeConn{pages: []wire.GenQueryOut{{ContinueIndex: 0, Rows: nil}}}
	r := query.New(context.Background(), conn, wire.GenQueryInp{})

	if r.Next() {
		t.Fatal("Next() = true for an empty result set")
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if r.Row() != nil {
		t.Fatalf("Row() = %v, want nil before any successful Next", r.Row())
	}
}

func TestRowsPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	conn := &fakeConn{err: wantErr}
	r := query.New(context.Background(), conn, wire.GenQueryInp{})

	if r.Next() {
		t.Fatal("Next() = true when GenQuery fails")
	}
	if !errors.Is(r.Err(), wantErr) {
		t.Fatalf("Err() = %v, want %v", r.Err(), wantErr)
	}
}
