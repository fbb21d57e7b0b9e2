// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

// Options configures ring construction.
type Options struct {
	capacity int
	fakeTSO  bool
}

// Builder builds a [Ring] with fluent configuration.
//
// Example:
//
//	r := spscring.Build[Event, uint64](spscring.NewBuilder(1024))
//	r := spscring.Build[Event, uint64](spscring.NewBuilder(1024).FakeTSO())
type Builder struct {
	opts Options
}

// NewBuilder creates a ring builder with the given capacity. Capacity
// rounds up to the next power of two. Panics if capacity < 2.
func NewBuilder(capacity int) *Builder {
	if capacity < 2 {
		panic("spscring: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// FakeTSO marks the ring as targeting a total-store-ordering platform;
// see [NewFakeTSO].
func (b *Builder) FakeTSO() *Builder {
	b.opts.fakeTSO = true
	return b
}

// Build constructs the *Ring[T, I] configured by b.
func Build[T any, I Index](b *Builder) *Ring[T, I] {
	return newRing[T, I](roundToPow2(b.opts.capacity), b.opts.fakeTSO)
}
