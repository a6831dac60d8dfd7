// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// Package transfer drives parallel, striped data-object transfers: a large
// object is split into contiguous byte ranges, each moved over its own
// leased Session, so the transfer's wall-clock time is bounded by the
// slowest stripe rather than the sum of all of them.
package transfer

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"go.irods.dev/client"
	"go.irods.dev/client/pool"
)

// DefaultThreshold is the object size below which Get and Put skip
// striping and move the whole object over a single Session; splitting a
// small object into stripes costs more in per-Session open/close overhead
// than it saves in parallelism.
const DefaultThreshold = 32 << 20

// DefaultStripes is the number of concurrent stripes Get and Put use for
// objects at or above the threshold.
const DefaultStripes = 4

// Options configures a striped transfer. The zero Options is valid and
// uses DefaultThreshold and DefaultStripes.
type Options struct {
	// Threshold is the object size below which the transfer runs over a
	// single Session instead of striping. Zero means DefaultThreshold.
	Threshold int64

	// Stripes is the number of concurrent byte ranges to split the object
	// into when it's at or above Threshold. Zero means DefaultStripes.
	Stripes int
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Stripes <= 0 {
		o.Stripes = DefaultStripes
	}
	return o
}

// stripe is one contiguous byte range of the transfer.
type stripe struct {
	offset int64
	length int64
}

func planStripes(size int64, n int) []stripe {
	if n < 1 {
		n = 1
	}
	each := (size + int64(n) - 1) / int64(n)
	if each == 0 {
		return []stripe{{offset: 0, length: 0}}
	}
	var stripes []stripe
	for off := int64(0); off < size; off += each {
		length := each
		if off+length > size {
			length = size - off
		}
		stripes = append(stripes, stripe{offset: off, length: length})
	}
	return stripes
}

// Get downloads the data object at path into local, a file opened for
// writing, striping the transfer across p's Sessions when the object's
// size meets opts.Threshold. Stripes fan out best-effort: a failing
// stripe does not cancel the others, and the first error returned by a
// stripe is the error Get returns.
func Get(ctx context.Context, p *pool.Pool, path string, local *os.File, opts Options) error {
	opts = opts.withDefaults()

	sess, err := p.Get(ctx)
	if err != nil {
		return err
	}
	stat, err := sess.Stat(ctx, path)
	if err != nil {
		p.Put(sess)
		return err
	}

	if stat.Size < opts.Threshold {
		defer p.Put(sess)
		return getWhole(ctx, sess, path, local, stat.Size)
	}
	p.Put(sess)

	var g errgroup.Group
	for _, st := range planStripes(stat.Size, opts.Stripes) {
		st := st
		g.Go(func() error {
			sess, err := p.Get(ctx)
			if err != nil {
				return fmt.Errorf("transfer: get %s [%d,%d): %w", path, st.offset, st.offset+st.length, err)
			}
			defer p.Put(sess)
			if err := getStripe(ctx, sess, path, local, st); err != nil {
				return fmt.Errorf("transfer: get %s [%d,%d): %w", path, st.offset, st.offset+st.length, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func getWhole(ctx context.Context, sess *irods.Session, path string, local *os.File, size int64) error {
	return getStripe(ctx, sess, path, local, stripe{offset: 0, length: size})
}

func getStripe(ctx context.Context, sess *irods.Session, path string, local *os.File, st stripe) error {
	h, err := sess.Open(ctx, path, irods.ReadOnly)
	if err != nil {
		return err
	}
	defer sess.CloseHandle(ctx, h)

	if st.offset > 0 {
		if _, err := sess.Seek(ctx, h, st.offset, irods.SeekSet); err != nil {
			return err
		}
	}

	const chunk = 1 << 20
	buf := make([]byte, chunk)
	remaining := st.length
	pos := st.offset
	for remaining > 0 {
		want := int64(len(buf))
		if remaining < want {
			want = remaining
		}
		n, err := sess.Read(ctx, h, buf[:want])
		if n > 0 {
			if _, werr := local.WriteAt(buf[:n], pos); werr != nil {
				return werr
			}
			pos += int64(n)
			remaining -= int64(n)
		}
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
	}
	return nil
}

// Put uploads local, a file opened for reading of the given size, to the
// data object at path, striping the transfer across p's Sessions when
// size meets opts.Threshold.
func Put(ctx context.Context, p *pool.Pool, path string, local *os.File, size int64, opts Options) error {
	opts = opts.withDefaults()

	if size < opts.Threshold {
		sess, err := p.Get(ctx)
		if err != nil {
			return err
		}
		defer p.Put(sess)
		return putWhole(ctx, sess, path, local, size)
	}

	sess, err := p.Get(ctx)
	if err != nil {
		return err
	}
	h, err := sess.Create(ctx, path, 0o640)
	if err != nil {
		p.Put(sess)
		return err
	}
	if err := sess.CloseHandle(ctx, h); err != nil {
		p.Put(sess)
		return err
	}
	p.Put(sess)

	var g errgroup.Group
	for _, st := range planStripes(size, opts.Stripes) {
		st := st
		g.Go(func() error {
			sess, err := p.Get(ctx)
			if err != nil {
				return fmt.Errorf("transfer: put %s [%d,%d): %w", path, st.offset, st.offset+st.length, err)
			}
			defer p.Put(sess)
			if err := putStripe(ctx, sess, path, local, st); err != nil {
				return fmt.Errorf("transfer: put %s [%d,%d): %w", path, st.offset, st.offset+st.length, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func putWhole(ctx context.Context, sess *irods.Session, path string, local *os.File, size int64) error {
	h, err := sess.Create(ctx, path, 0o640)
	if err != nil {
		return err
	}
	defer sess.CloseHandle(ctx, h)
	return putStripeBody(ctx, sess, h, local, stripe{offset: 0, length: size})
}

func putStripe(ctx context.Context, sess *irods.Session, path string, local *os.File, st stripe) error {
	h, err := sess.Open(ctx, path, irods.WriteOnly)
	if err != nil {
		return err
	}
	defer sess.CloseHandle(ctx, h)
	if st.offset > 0 {
		if _, err := sess.Seek(ctx, h, st.offset, irods.SeekSet); err != nil {
			return err
		}
	}
	return putStripeBody(ctx, sess, h, local, st)
}

func putStripeBody(ctx context.Context, sess *irods.Session, h irods.DataObjectHandle, local *os.File, st stripe) error {
	const chunk = 1 << 20
	buf := make([]byte, chunk)
	remaining := st.length
	pos := st.offset
	for remaining > 0 {
		want := int64(len(buf))
		if remaining < want {
			want = remaining
		}
		n, err := local.ReadAt(buf[:want], pos)
		if n > 0 {
			if _, werr := sess.Write(ctx, h, buf[:n]); werr != nil {
				return werr
			}
			pos += int64(n)
			remaining -= int64(n)
		}
		if err != nil && remaining > 0 {
			return err
		}
	}
	return nil
}
