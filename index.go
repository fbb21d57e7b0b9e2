// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

// Index is the constraint on a ring's counter type. It admits exactly the
// unsigned fixed-width integer types, which mechanically satisfies two of
// the construction-time predicates below ("I is unsigned", "sizeof(I) <=
// sizeof(the platform's size type)") as a compile error rather than a
// panic: there is no way to instantiate Ring with a signed or a
// wider-than-64-bit type.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// validate panics unless capacity is a valid ring size for I: nonzero, a
// power of two, and small enough that head-tail arithmetic in I never
// crosses the representable midpoint of I (capacity <= maxOf[I]()/2).
//
// This is the construction-time analogue of the static_assert block the
// original template-based design performs at instantiation: Go's generics
// have no value-type parameters, so a bad capacity cannot be rejected
// until a Ring is actually constructed with it.
func validate[I Index](capacity int) {
	if capacity <= 0 {
		panic("spscring: capacity must be > 0")
	}
	if capacity&(capacity-1) != 0 {
		panic("spscring: capacity must be a power of two")
	}
	if uint64(capacity) > maxOf[I]()>>1 {
		panic("spscring: capacity too large for index type")
	}
}

// maxOf returns the maximum representable value of I.
func maxOf[I Index]() uint64 {
	return uint64(^I(0))
}
