// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package bench measures the throughput of the cipherkit primitives on
// generated messages.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pion/logging"
	"golang.org/x/sync/errgroup"

	"github.com/pion/cipherkit"
)

var (
	errUnknownCase = errors.New("bench: unknown case")
	errNoWorkers   = errors.New("bench: at least one worker and one message are required")
)

// ctxCheckInterval is how many messages a worker handles between
// cancellation checks.
const ctxCheckInterval = 256

// Result is the outcome of one case.
type Result struct {
	Case  string
	Bytes int64
	// Elapsed is the slowest worker's time spent in the primitive, with the
	// time to generate its messages subtracted.
	Elapsed  time.Duration
	Fill     time.Duration
	Checksum uint32
}

// Throughput returns bytes per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds()
}

// Runner drives Count messages of Size bytes through a case, split across
// Parallel workers. Every worker owns its primitive and its Filler, seeded
// from Seed plus the worker index.
type Runner struct {
	Size     int
	Count    int
	Parallel int
	Seed     uint32
	Params   Params

	log logging.LeveledLogger
}

// NewRunner returns a Runner logging through loggerFactory, or the default
// pion/logging factory when it is nil.
func NewRunner(size, count, parallel int, seed uint32, params Params, loggerFactory logging.LoggerFactory) *Runner {
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	params.Size = size
	if params.LoggerFactory == nil {
		params.LoggerFactory = loggerFactory
	}

	return &Runner{
		Size:     size,
		Count:    count,
		Parallel: parallel,
		Seed:     seed,
		Params:   params,
		log:      loggerFactory.NewLogger("bench"),
	}
}

// share returns how many messages worker w handles.
func (r *Runner) share(w int) int {
	n := r.Count / r.Parallel
	if w < r.Count%r.Parallel {
		n++
	}
	return n
}

// Run benchmarks c and returns the aggregate of all workers. The checksum is
// the sum over workers, so it is stable for a given configuration.
func (r *Runner) Run(ctx context.Context, c Case) (Result, error) {
	if r.Parallel < 1 || r.Count < 1 || r.Size < 1 {
		return Result{}, errNoWorkers
	}
	if c.BlockAligned && r.Size%cipherkit.BlockSize != 0 {
		return Result{}, fmt.Errorf("%s: size %d is not a multiple of %d: %w",
			c.Name, r.Size, cipherkit.BlockSize, cipherkit.ErrInvalidInput)
	}

	transforms := make([]func([]byte), r.Parallel)
	for w := range transforms {
		t, err := c.New(r.Params)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", c.Name, err)
		}
		transforms[w] = t
	}

	type workerResult struct {
		elapsed, fill time.Duration
		sum           uint32
	}
	results := make([]workerResult, r.Parallel)

	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < r.Parallel; w++ {
		w := w
		group.Go(func() error {
			seed := r.Seed + uint32(w)
			n := r.share(w)
			buf := make([]byte, r.Size)

			fill, _, err := r.loop(ctx, seed, n, buf, nil)
			if err != nil {
				return err
			}
			total, sum, err := r.loop(ctx, seed, n, buf, transforms[w])
			if err != nil {
				return err
			}

			elapsed := total - fill
			if elapsed <= 0 {
				elapsed = time.Nanosecond
			}
			results[w] = workerResult{elapsed: elapsed, fill: fill, sum: sum}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", c.Name, err)
	}

	res := Result{Case: c.Name, Bytes: int64(r.Size) * int64(r.Count)}
	for _, wr := range results {
		if wr.elapsed > res.Elapsed {
			res.Elapsed = wr.elapsed
		}
		if wr.fill > res.Fill {
			res.Fill = wr.fill
		}
		res.Checksum += wr.sum
	}

	r.log.Debugf("%s: %d x %d bytes on %d workers in %v (fill %v)",
		c.Name, r.Count, r.Size, r.Parallel, res.Elapsed, res.Fill)
	return res, nil
}

// loop fills and checksums n messages, transforming each one when t is not
// nil, and reports the time taken.
func (r *Runner) loop(ctx context.Context, seed uint32, n int, buf []byte, t func([]byte)) (time.Duration, uint32, error) {
	filler := NewFiller(seed)
	var sum uint32

	start := time.Now()
	for i := 0; i < n; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}
		}

		filler.Fill(buf)
		if t != nil {
			t(buf)
		}
		sum += Checksum(buf)
	}
	return time.Since(start), sum, nil
}
