// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

import "code.hybscloud.com/atomix"

// pad is cache line padding, sized to isolate the field before and after
// it from false sharing on the architectures this package targets.
type pad [64]byte

// Ring is a bounded, lock-free, wait-free ring buffer for exactly one
// producer goroutine and exactly one consumer goroutine.
//
// T may be any Go type; a Go value copy has no custom destructor or
// relocation logic, so the "trivially copyable" requirement the element
// type carries in other languages has no separate check here. I is the
// counter type: its width bounds how many push/pop cycles the ring can
// survive before wraparound (2^bits(I)), and its construction-time
// headroom check (validate) guarantees head-tail arithmetic in I is
// always sound across that wrap.
//
// The zero value of Ring is not usable; construct one with [New] or
// [NewFakeTSO].
type Ring[T any, I Index] struct {
	_          pad
	head       atomix.Uint64 // producer-owned write cursor; consumer reads with acquire
	_          pad
	cachedTail I // producer's cached view of tail, avoids an acquire-load per Push
	_          pad
	tail       atomix.Uint64 // consumer-owned read cursor; producer reads with acquire
	_          pad
	cachedHead I // consumer's cached view of head, avoids an acquire-load per Pop
	_          pad
	mask       I
	capacity   int
	fakeTSO    bool
	buf        []T
}

// New constructs a ring with acquire/release ordering between producer
// and consumer. Capacity rounds up to the next power of two and must
// satisfy capacity <= max(I)/2; New panics otherwise.
func New[T any, I Index](capacity int) *Ring[T, I] {
	if capacity < 2 {
		panic("spscring: capacity must be >= 2")
	}
	return newRing[T, I](roundToPow2(capacity), false)
}

// NewFakeTSO constructs a ring that degrades every acquire/release to a
// relaxed operation, relying on the target's total store ordering
// instead of explicit hardware barriers. Only correct on a single-core or
// otherwise TSO target; see the package doc.
func NewFakeTSO[T any, I Index](capacity int) *Ring[T, I] {
	if capacity < 2 {
		panic("spscring: capacity must be >= 2")
	}
	return newRing[T, I](roundToPow2(capacity), true)
}

func newRing[T any, I Index](capacity int, fakeTSO bool) *Ring[T, I] {
	validate[I](capacity)
	return &Ring[T, I]{
		mask:     I(capacity - 1),
		capacity: capacity,
		fakeTSO:  fakeTSO,
		buf:      make([]T, capacity),
	}
}

func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// loadOpposite loads the counter owned by the other role. It is an
// acquire load unless the ring was built with NewFakeTSO, in which case
// it degrades to relaxed.
func (r *Ring[T, I]) loadOpposite(a *atomix.Uint64) uint64 {
	if r.fakeTSO {
		return a.LoadRelaxed()
	}
	return a.LoadAcquire()
}

// storeOwn publishes a new value of the counter owned by the calling
// role. It is a release store unless the ring was built with
// NewFakeTSO, in which case it degrades to relaxed.
func (r *Ring[T, I]) storeOwn(a *atomix.Uint64, v uint64) {
	if r.fakeTSO {
		a.StoreRelaxed(v)
		return
	}
	a.StoreRelease(v)
}

// Push inserts v without blocking. Reports whether the ring had room.
// Producer-side only.
func (r *Ring[T, I]) Push(v T) bool {
	head := I(r.head.LoadRelaxed())
	if head-r.cachedTail > r.mask {
		r.cachedTail = I(r.loadOpposite(&r.tail))
		if head-r.cachedTail > r.mask {
			return false
		}
	}
	r.buf[head&r.mask] = v
	r.storeOwn(&r.head, uint64(head+1))
	return true
}

// PushFromCallback inserts the value f returns without blocking. f is
// invoked at most once, and only after the ring is known to have room —
// so its side effects happen if and only if the push happens. Reports
// whether the ring had room (and therefore whether f was called).
// Producer-side only.
func (r *Ring[T, I]) PushFromCallback(f func() T) bool {
	head := I(r.head.LoadRelaxed())
	if head-r.cachedTail > r.mask {
		r.cachedTail = I(r.loadOpposite(&r.tail))
		if head-r.cachedTail > r.mask {
			return false
		}
	}
	r.buf[head&r.mask] = f()
	r.storeOwn(&r.head, uint64(head+1))
	return true
}

// Pop removes the front element into *out without blocking. Reports
// whether an element was available. Consumer-side only.
func (r *Ring[T, I]) Pop(out *T) bool {
	tail := I(r.tail.LoadRelaxed())
	if n := r.cachedHead - tail; n == 0 || n > r.mask+1 {
		r.cachedHead = I(r.loadOpposite(&r.head))
		if r.cachedHead == tail {
			return false
		}
	}
	*out = r.buf[tail&r.mask]
	r.storeOwn(&r.tail, uint64(tail+1))
	return true
}

// Peek returns a pointer to the front element without removing it, or
// nil if the ring is empty. The pointer is valid only until the next
// mutation by either role — the consumer must not retain it across any
// further Push, Pop, Discard, PushBatch/PopBatch, or clear call.
// Consumer-side only.
func (r *Ring[T, I]) Peek() *T {
	tail := I(r.tail.LoadRelaxed())
	head := I(r.loadOpposite(&r.head))
	if tail == head {
		return nil
	}
	return &r.buf[tail&r.mask]
}

// At returns a pointer to the i'th element from the consumer front
// (0-based), or nil if i is out of range. The same aliasing caveat as
// Peek applies. Consumer-side only.
func (r *Ring[T, I]) At(i int) *T {
	if i < 0 {
		return nil
	}
	tail := I(r.tail.LoadRelaxed())
	head := I(r.loadOpposite(&r.head))
	if uint64(head-tail) <= uint64(i) {
		return nil
	}
	return &r.buf[(tail+I(i))&r.mask]
}

// IndexedAccess returns the i'th element from the consumer front without
// bounds checking against the ring's logical size; the caller must
// guarantee i < r.Size(). It still cannot read outside the backing
// array — Go's own slice bounds check remains in force — but i >=
// Size() silently returns a stale or not-yet-written slot instead of
// panicking on that ground alone. Consumer-side only.
func (r *Ring[T, I]) IndexedAccess(i int) T {
	tail := I(r.tail.LoadRelaxed())
	return r.buf[(tail+I(i))&r.mask]
}

// Discard advances the consumer past up to k elements without reading
// them, and returns how many were actually advanced (min(k, Size())).
// Consumer-side only.
func (r *Ring[T, I]) Discard(k int) int {
	if k <= 0 {
		return 0
	}
	tail := I(r.tail.LoadRelaxed())
	head := I(r.loadOpposite(&r.head))
	available := int(head - tail)
	if k > available {
		k = available
	}
	if k > 0 {
		r.storeOwn(&r.tail, uint64(tail+I(k)))
	}
	return k
}
