// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package pool_test

import (
	"context"
	"testing"
	"time"

	"go.irods.dev/client"
	"go.irods.dev/client/internal/irodstest"
	"go.irods.dev/client/pool"
)

// newTestPool starts one fake server and returns a Pool whose Dial always
// connects to it; both are closed through t.Cleanup.
func newTestPool(t *testing.T, cfg pool.Config) *pool.Pool {
	t.Helper()
	srv, addr, err := irodstest.Listen()
	if err != nil {
		t.Fatalf("irodstest.Listen: %v", err)
	}
	t.Cleanup(func() { srv.Close() })

	cfg.Dial = func(ctx context.Context) (*irods.Session, error) {
		return irods.DialSession(ctx, "tcp", addr, irodstest.TestAccount, irods.ConnConfig{})
	}
	p := pool.New(cfg)
	t.Cleanup(p.Close)
	return p
}

func TestGetDialsWithinCapacity(t *testing.T) {
	p := newTestPool(t, pool.Config{Size: 2})
	ctx := context.Background()

	s1, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	s2, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s1 == s2 {
		t.Fatal("expected two distinct Sessions")
	}
}

func TestGetBlocksAtCapacityUntilPut(t *testing.T) {
	p := newTestPool(t, pool.Config{Size: 1})
	ctx := context.Background()

	s1, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	done := make(chan struct{})
	go func() {
		s2, err := p.Get(ctx)
		if err != nil {
			t.Errorf("second Get: %v", err)
		} else if s2 != s1 {
			t.Errorf("expected the recycled Session back, got a different one")
		}
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second Get returned before the first Session was put back")
	case <-time.After(50 * time.Millisecond):
	}

	p.Put(s1)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Get did not unblock after Put")
	}
}

func TestGetRespectsContextCancellation(t *testing.T) {
	p := newTestPool(t, pool.Config{Size: 1})
	ctx := context.Background()

	if _, err := p.Get(ctx); err != nil {
		t.Fatalf("Get: %v", err)
	}

	cctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := p.Get(cctx); err == nil {
		t.Fatal("expected Get to fail once the context deadline passed while at capacity")
	}
}

func TestPutRetiresAfterMaxRecycles(t *testing.T) {
	p := newTestPool(t, pool.Config{Size: 1, MaxRecycles: 2})
	ctx := context.Background()

	var sessions []*irods.Session
	for i := 0; i < 3; i++ {
		s, err := p.Get(ctx)
		if err != nil {
			t.Fatalf("Get #%d: %v", i, err)
		}
		sessions = append(sessions, s)
		p.Put(s)
	}

	// The first Session should have been retired after its second Put
	// (RecycleCount reaching MaxRecycles), so the third Get must have
	// dialed a fresh Session distinct from the first.
	if sessions[0] == sessions[2] {
		t.Fatal("expected the Session to be retired and replaced after MaxRecycles Puts")
	}
}

func TestDiscardFreesCapacityWithoutReuse(t *testing.T) {
	p := newTestPool(t, pool.Config{Size: 1})
	ctx := context.Background()

	s1, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	p.Discard(s1)

	s2, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get after Discard: %v", err)
	}
	if s2 == s1 {
		t.Fatal("expected a fresh Session after Discard, not the discarded one")
	}
}
