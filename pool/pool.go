// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package pool maintains a bounded set of authenticated irods.Sessions so
// that callers doing many short operations, or many operations in
// parallel, are not paying a full connect-and-authenticate round trip for
// each one.
package pool

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"go.irods.dev/client"
)

// Config bounds a Pool's size and a Session's useful lifetime within it.
type Config struct {
	// Size caps the number of Sessions the Pool will hold concurrently,
	// whether idle or leased out. A Get beyond this limit blocks until a
	// Session is returned or the context passed to Get is done.
	Size int64

	// MaxAge retires a Session once it has been open this long, regardless
	// of how many times it has been recycled. Zero means no age limit.
	MaxAge time.Duration

	// MaxRecycles retires a Session once it has been leased and returned
	// this many times. Zero means no recycle limit.
	MaxRecycles int

	// Dial opens one new authenticated Session. It is called with the
	// context passed to the Get that needs the new Session.
	Dial func(ctx context.Context) (*irods.Session, error)
}

// Pool is a concurrency-safe set of irods.Sessions leased out to callers
// and returned when they're done. A zero Pool is not valid; use New.
//
// A Session holds one unit of sem from the moment it is dialed until it is
// retired; idle returns go on the idle channel without touching sem, so
// Get can distinguish "no idle Session, but room to dial one" from "at
// capacity, must wait for a Put".
type Pool struct {
	cfg  Config
	sem  *semaphore.Weighted
	idle chan *irods.Session
}

// New creates a Pool governed by cfg. cfg.Dial and a positive cfg.Size are
// required.
func New(cfg Config) *Pool {
	return &Pool{
		cfg:  cfg,
		sem:  semaphore.NewWeighted(cfg.Size),
		idle: make(chan *irods.Session, cfg.Size),
	}
}

// Get leases a Session from the pool, dialing a new one if none are idle
// and the pool has not reached its size limit. It blocks until a Session
// is available or ctx is done.
func (p *Pool) Get(ctx context.Context) (*irods.Session, error) {
	for {
		select {
		case sess := <-p.idle:
			if p.retire(sess) {
				sess.Close()
				p.sem.Release(1)
				continue
			}
			return sess, nil
		default:
		}

		if p.sem.TryAcquire(1) {
			sess, err := p.cfg.Dial(ctx)
			if err != nil {
				p.sem.Release(1)
				return nil, err
			}
			return sess, nil
		}

		select {
		case sess := <-p.idle:
			if p.retire(sess) {
				sess.Close()
				p.sem.Release(1)
				continue
			}
			return sess, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Put returns a Session leased from Get. Sessions that are poisoned or
// have exceeded the pool's age or recycle limit are closed rather than
// reused, freeing their slot for a fresh Dial.
func (p *Pool) Put(sess *irods.Session) {
	sess.RecycleCount++

	if p.retire(sess) {
		sess.Close()
		p.sem.Release(1)
		return
	}

	select {
	case p.idle <- sess:
	default:
		// idle is sized to Size and every live Session is either idle or
		// leased, so this can only happen if a Session was Put twice.
		sess.Close()
		p.sem.Release(1)
	}
}

// Discard closes a leased Session without returning it to the pool,
// freeing its slot. Callers that know a Session is unusable (a caller-
// observed I/O error the Session itself didn't register as a poison) use
// this instead of Put.
func (p *Pool) Discard(sess *irods.Session) {
	sess.Close()
	p.sem.Release(1)
}

func (p *Pool) retire(sess *irods.Session) bool {
	if sess.Poisoned() {
		return true
	}
	if p.cfg.MaxRecycles > 0 && sess.RecycleCount >= p.cfg.MaxRecycles {
		return true
	}
	if p.cfg.MaxAge > 0 && time.Since(sess.CreatedAt) >= p.cfg.MaxAge {
		return true
	}
	return false
}

// Close closes every currently idle Session. It does not track or cancel
// outstanding leases: a Session leased out at the time of the call and
// later returned via Put goes back on the idle set and stays open.
func (p *Pool) Close() {
	for {
		select {
		case sess := <-p.idle:
			sess.Close()
		default:
			return
		}
	}
}
