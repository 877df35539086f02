// Copyright 2025 The go-pulpdsp Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent pool of goroutines that plays the
// role of an accelerator cluster: a kernel is forked once per processing
// element, each shard receives its core id, and the caller blocks until every
// shard has finished.
//
// The pool does no partitioning of its own. Shards decide which rows they own
// from their core id (see hwy.CyclicRows), so the same shard function can be
// run by a single core or by a whole cluster.
//
// Usage:
//
//	pool := workerpool.New(hwy.ClusterSize())
//	defer pool.Close()
//
//	pool.Fork(8, func(coreID int) {
//	    matscale.MatScaleStrideShard(args, coreID)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pulp-platform/go-pulpdsp/hwy"
)

// Pool is a persistent worker pool reused across many forks. Workers are
// spawned once at creation.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one shard of a fork.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool. A nil pool has one.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool. Queued shards still complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Fork runs fn once for every core id in [0, nPE) and returns after all of
// them have returned. nPE <= 0 forks one shard per worker.
//
// A nil or closed pool runs the shards sequentially on the calling goroutine,
// in core id order. Fork must not be called from inside a shard of the same
// pool.
func (p *Pool) Fork(nPE int, fn func(coreID int)) {
	if nPE <= 0 {
		nPE = p.NumWorkers()
	}

	if p == nil || p.closed.Load() || nPE == 1 {
		for coreID := range nPE {
			fn(coreID)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(nPE)
	for coreID := range nPE {
		p.workC <- workItem{
			fn:      func() { fn(coreID) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ForkRows forks nPE shards over m rows. Shard c receives the rows
// c, c+nPE, c+2*nPE, ... below m. Shards whose range is empty are not run.
func (p *Pool) ForkRows(m, nPE int, fn func(coreID int, rows hwy.RowRange)) {
	if m <= 0 {
		return
	}
	if nPE <= 0 {
		nPE = p.NumWorkers()
	}
	// More cores than rows would only fork empty shards.
	nPE = min(nPE, m)

	p.Fork(nPE, func(coreID int) {
		fn(coreID, hwy.CyclicRows(coreID, nPE, m))
	})
}
