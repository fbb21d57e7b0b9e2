// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscring provides a bounded, lock-free, wait-free ring buffer
// for exactly one producer goroutine and exactly one consumer goroutine.
//
// Both the producer and consumer side complete every operation in a
// bounded number of steps regardless of the other side's progress: there
// is no spin loop inside the package, no lock, and no blocking wait. A
// caller that needs to wait for space or data composes its own retry
// policy externally.
//
// # Quick Start
//
//	r := spscring.New[Event, uint64](1024)
//
//	// Producer goroutine
//	for _, ev := range batch {
//	    for !r.Push(ev) {
//	        backoff.Wait() // caller-chosen retry policy
//	    }
//	}
//
//	// Consumer goroutine
//	var ev Event
//	for r.Pop(&ev) {
//	    process(ev)
//	}
//
// # Role Contract
//
// Exactly one goroutine may call producer-side methods (Push,
// PushFromCallback, PushBatch, PushBatchFunc, ProducerClear) and exactly
// one goroutine may call consumer-side methods (Pop, Peek, At,
// IndexedAccess, Discard, PopBatch, PopBatchFunc, ConsumerClear) at any
// time. Reassigning either role to a different goroutine requires
// external synchronization ensuring no operation from the old holder is
// still in flight. [Producer] and [Consumer] let a constructor hand each
// goroutine only the half of the API it is allowed to call:
//
//	r := spscring.New[Event, uint64](1024)
//	go runProducer(spscring.Producer[Event](r))
//	go runConsumer(spscring.Consumer[Event](r))
//
// # Capacity
//
// Capacity rounds up to the next power of two and must leave the chosen
// index type I headroom for unsigned wraparound (capacity <= max(I)/2):
//
//	r := spscring.New[int, uint64](1000)  // actual capacity: 1024
//
// Panics if capacity < 2 or capacity > max(I)/2. Minimum capacity is 2.
//
// # FakeTSO
//
// [NewFakeTSO] builds a ring that relies on total store ordering instead
// of acquire/release barriers — appropriate on a single-core target where
// hardware memory barriers are pure overhead (a simple microcontroller,
// for instance), and nowhere else: on a multi-core target it silently
// drops the synchronization the producer and consumer depend on.
//
// # Batch Transfer
//
// PushBatch/PopBatch move a caller-supplied slice in passes of up to two
// bulk copies each, split at the ring's wraparound boundary, and return the actual
// count transferred — which may be less than requested, including zero.
// The *Func variants additionally invoke a callback once per internal
// iteration, after that iteration's elements are published, useful for
// notifying a backoff-waiting peer incrementally instead of only once the
// whole batch lands:
//
//	n := r.PushBatchFunc(events, func(written int) {
//	    notifyConsumer() // cheap hint; consumer still checks itself
//	})
//
// # Backoff Policies
//
// This package never retries internally; the caller picks a policy. Two
// reasonable ones, both used by this package's own examples and tests:
// code.hybscloud.com/spin.Wait for a tight spin on latency-sensitive
// paths, and code.hybscloud.com/iox.Backoff for an adaptive backoff that
// yields or sleeps under sustained contention.
//
// # Error Handling
//
// Push/Pop/PushFromCallback return false on capacity failure (full or
// empty); PushBatch/PopBatch return a short or zero count. None of these
// are errors — they carry no side effect and the caller is expected to
// retry. [Ring.Enqueue] and [Ring.Dequeue] wrap Push and Pop for callers
// that want one error-based vocabulary across this ecosystem's queue
// types; they are not part of [Queue], and they return [ErrWouldBlock]
// (sourced from code.hybscloud.com/iox for ecosystem consistency) instead
// of false.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe the happens-before relationship atomix's acquire/release
// pair establishes between two otherwise-plain fields. Tests that rely on
// that relationship are excluded under -race via //go:build !race; see
// [RaceEnabled].
package spscring
