// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring_test

import (
	"fmt"

	"code.hybscloud.com/spscring"
)

// ExampleRing demonstrates basic Push/Pop usage within a single
// goroutine.
func ExampleRing() {
	r := spscring.New[int, uint32](8)

	for i := 1; i <= 5; i++ {
		r.Push(i * 10)
	}

	var v int
	for r.Pop(&v) {
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleRing_batchProcessing demonstrates collecting items into
// fixed-size batches with PopBatch.
func ExampleRing_batchProcessing() {
	r := spscring.New[int, uint32](64)

	for i := 1; i <= 9; i++ {
		r.Push(i)
	}

	batch := make([]int, 4)
	batchNum := 0
	for {
		n := r.PopBatch(batch)
		if n == 0 {
			break
		}
		batchNum++
		fmt.Printf("Batch %d: %v\n", batchNum, batch[:n])
	}

	// Output:
	// Batch 1: [1 2 3 4]
	// Batch 2: [5 6 7 8]
	// Batch 3: [9]
}

// ExampleRing_backpressure demonstrates handling a full ring.
func ExampleRing_backpressure() {
	r := spscring.New[int, uint32](4) // rounds up; already a power of two

	filled := 0
	for i := 1; i <= 10; i++ {
		if r.Push(i) {
			filled++
		} else {
			fmt.Printf("Backpressure at item %d (ring full)\n", i)
			break
		}
	}
	fmt.Printf("Filled %d items\n", filled)

	var v int
	r.Pop(&v)
	fmt.Printf("Drained: %d\n", v)

	if r.Push(100) {
		fmt.Println("Pushed 100 after draining")
	}

	// Output:
	// Backpressure at item 5 (ring full)
	// Filled 4 items
	// Drained: 1
	// Pushed 100 after draining
}

// ExampleIsWouldBlock demonstrates the error-based Enqueue/Dequeue
// wrapper for callers that want one errors.Is-compatible vocabulary
// across this ecosystem's queue types.
func ExampleIsWouldBlock() {
	r := spscring.New[int, uint32](2)

	one, two := 1, 2
	r.Enqueue(&one)
	r.Enqueue(&two)

	five := 5
	if err := r.Enqueue(&five); spscring.IsWouldBlock(err) {
		fmt.Println("ring full - applying backpressure")
	}

	r.Dequeue()
	r.Dequeue()

	if _, err := r.Dequeue(); spscring.IsWouldBlock(err) {
		fmt.Println("ring empty - no data available")
	}

	// Output:
	// ring full - applying backpressure
	// ring empty - no data available
}

// ExampleBuild demonstrates the fluent builder.
func ExampleBuild() {
	r := spscring.Build[int, uint64](spscring.NewBuilder(1000))
	fmt.Println("capacity:", r.Capacity())

	// Output:
	// capacity: 1024
}

// ExampleNewFakeTSO demonstrates constructing a ring for a single-core,
// total-store-ordering target where hardware barriers are pure overhead.
func ExampleNewFakeTSO() {
	r := spscring.NewFakeTSO[byte, uint16](16)
	r.Push('a')
	r.Push('b')

	var v byte
	r.Pop(&v)
	fmt.Println(string(v))

	// Output:
	// a
}
