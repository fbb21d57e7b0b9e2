// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates [Ring.Enqueue] or [Ring.Dequeue] could not
// proceed immediately: the ring was full (Enqueue) or empty (Dequeue).
//
// ErrWouldBlock is a control flow signal, not a failure: it carries no
// side effect and the caller is expected to retry with its own backoff
// policy. Push, Pop, PushFromCallback, PushBatch, and PopBatch report the
// same condition as a bool/count instead, for callers that would rather
// not allocate an error value on every full/empty check; Enqueue and
// Dequeue exist only for ecosystem consistency with this domain's other
// queue types.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// Enqueue adds an element to the ring (producer only). Returns
// [ErrWouldBlock] if the ring is full. A thin wrapper over [Ring.Push]
// for callers using this ecosystem's error-based queue vocabulary.
func (r *Ring[T, I]) Enqueue(elem *T) error {
	if r.Push(*elem) {
		return nil
	}
	return ErrWouldBlock
}

// Dequeue removes and returns the front element (consumer only). Returns
// [ErrWouldBlock] if the ring is empty. A thin wrapper over [Ring.Pop]
// for callers using this ecosystem's error-based queue vocabulary.
func (r *Ring[T, I]) Dequeue() (T, error) {
	var out T
	if r.Pop(&out) {
		return out, nil
	}
	return out, ErrWouldBlock
}
