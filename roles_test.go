// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"code.hybscloud.com/spscring"
)

// Producer[T] and Consumer[T] let a constructor hand each goroutine only
// the half of the API it is allowed to call; this test drives the ring
// exclusively through those narrowed interfaces to confirm *Ring
// satisfies both.
func TestProducerConsumerInterfaces(t *testing.T) {
	if spscring.RaceEnabled {
		t.Skip("skip: relies on acquire/release ordering the race detector cannot observe")
	}

	r := spscring.New[int, uint32](16)

	var producer spscring.Producer[int] = r
	var consumer spscring.Consumer[int] = r

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for i := 0; i < 100; i++ {
			for !producer.Push(i) {
				sw.Once()
			}
		}
	}()

	mismatch := -1
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		var v int
		for want := 0; want < 100; want++ {
			for !consumer.Pop(&v) {
				backoff.Wait()
			}
			backoff.Reset()
			if v != want && mismatch < 0 {
				mismatch = want
			}
		}
	}()

	wg.Wait()
	if mismatch >= 0 {
		t.Fatalf("FIFO order violated at logical position %d", mismatch)
	}
}

// Queue[T] is the role-agnostic surface; confirm *Ring satisfies it too.
func TestQueueInterface(t *testing.T) {
	var q spscring.Queue[int] = spscring.New[int, uint32](4)
	q.Push(1)
	if got, want := q.Size(), 1; got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
	var v int
	if !q.Pop(&v) || v != 1 {
		t.Fatalf("Pop() = (%d, %v), want (1, true)", v, true)
	}
}
