// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

// Size returns a racy snapshot of the number of elements currently in
// the ring: a lower bound of what the consumer will still find pending
// by the time it acts on this value. Safe to call from either role.
func (r *Ring[T, I]) Size() int {
	head := I(r.loadOpposite(&r.head))
	tail := I(r.tail.LoadRelaxed())
	return int(head - tail)
}

// Available returns a racy snapshot of the number of free slots: a lower
// bound of what the producer will still find free by the time it acts on
// this value. Safe to call from either role.
func (r *Ring[T, I]) Available() int {
	head := I(r.head.LoadRelaxed())
	tail := I(r.loadOpposite(&r.tail))
	return r.capacity - int(head-tail)
}

// IsEmpty reports whether Size() == 0 at the moment of the call.
func (r *Ring[T, I]) IsEmpty() bool {
	return r.Size() == 0
}

// IsFull reports whether Available() == 0 at the moment of the call.
func (r *Ring[T, I]) IsFull() bool {
	return r.Available() == 0
}

// Capacity returns the ring's fixed capacity, chosen at construction.
func (r *Ring[T, I]) Capacity() int {
	return r.capacity
}
