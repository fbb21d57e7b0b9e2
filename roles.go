// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

// Producer is the producer-side method set of a [Ring]. A constructor
// that hands this interface to the producer goroutine instead of the
// concrete *Ring documents, at the type level, that the receiver may not
// call consumer-side methods — Go cannot enforce the single-writer
// contract itself, but it can keep the wrong half of the API out of
// reach.
type Producer[T any] interface {
	Push(v T) bool
	PushFromCallback(f func() T) bool
	PushBatch(src []T) int
	PushBatchFunc(src []T, onBatch func(written int)) int
	ProducerClear()
}

// Consumer is the consumer-side method set of a [Ring]; see [Producer].
type Consumer[T any] interface {
	Pop(out *T) bool
	Peek() *T
	At(i int) *T
	IndexedAccess(i int) T
	Discard(k int) int
	PopBatch(dst []T) int
	PopBatchFunc(dst []T, onBatch func(read int)) int
	ConsumerClear()
}

// Queue is the combined role-agnostic surface of a [Ring]: both
// [Producer] and [Consumer] plus the query methods safe to call from
// either side. Most callers use the concrete *Ring directly; Queue
// exists for code that is generic over which queue implementation it
// holds.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Size() int
	Available() int
	IsEmpty() bool
	IsFull() bool
	Capacity() int
}
