// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

// PushBatch inserts as much of src as fits, in passes of at most two bulk
// copies each split at the ring's wraparound boundary (a further pass runs
// while the consumer has freed more space), and returns the number of
// elements actually written — which may be less than len(src), including
// zero if the ring was already full. Producer-side only.
func (r *Ring[T, I]) PushBatch(src []T) int {
	return r.pushBatch(src, nil)
}

// PushBatchFunc is PushBatch with a callback invoked once per internal
// iteration, after that iteration's release-store, with the running
// total written so far. The callback cannot abort the loop; it exists so
// a waiting consumer can be notified of partial progress instead of only
// once the whole batch lands. Producer-side only.
func (r *Ring[T, I]) PushBatchFunc(src []T, onBatch func(written int)) int {
	return r.pushBatch(src, onBatch)
}

func (r *Ring[T, I]) pushBatch(src []T, onBatch func(written int)) int {
	written := 0
	n := len(src)
	head := I(r.head.LoadRelaxed())
	for written < n {
		tail := I(r.loadOpposite(&r.tail))
		space := r.capacity - int(head-tail)
		if space <= 0 {
			break
		}

		w := n - written
		if w > space {
			w = space
		}

		offset := int(head & r.mask)
		first := w
		if first > r.capacity-offset {
			first = r.capacity - offset
		}
		second := w - first

		copy(r.buf[offset:offset+first], src[written:written+first])
		if second > 0 {
			copy(r.buf[0:second], src[written+first:written+first+second])
		}

		written += w
		head += I(w)
		r.storeOwn(&r.head, uint64(head))

		if onBatch != nil {
			onBatch(written)
		}
	}
	return written
}

// PopBatch removes up to len(dst) elements into dst, in passes of at most
// two bulk copies each split at the ring's wraparound boundary (a further
// pass runs while the producer has published more), and returns the number
// of elements actually read — which may be less than len(dst), including
// zero if the ring was already empty. Consumer-side only.
func (r *Ring[T, I]) PopBatch(dst []T) int {
	return r.popBatch(dst, nil)
}

// PopBatchFunc is PopBatch with a callback invoked once per internal
// iteration, after that iteration's release-store, with the running
// total read so far. The callback cannot abort the loop. Consumer-side
// only.
func (r *Ring[T, I]) PopBatchFunc(dst []T, onBatch func(read int)) int {
	return r.popBatch(dst, onBatch)
}

func (r *Ring[T, I]) popBatch(dst []T, onBatch func(read int)) int {
	read := 0
	n := len(dst)
	tail := I(r.tail.LoadRelaxed())
	for read < n {
		head := I(r.loadOpposite(&r.head))
		available := int(head - tail)
		if available <= 0 {
			break
		}

		w := n - read
		if w > available {
			w = available
		}

		offset := int(tail & r.mask)
		first := w
		if first > r.capacity-offset {
			first = r.capacity - offset
		}
		second := w - first

		copy(dst[read:read+first], r.buf[offset:offset+first])
		if second > 0 {
			copy(dst[read+first:read+first+second], r.buf[0:second])
		}

		read += w
		tail += I(w)
		r.storeOwn(&r.tail, uint64(tail))

		if onBatch != nil {
			onBatch(read)
		}
	}
	return read
}
