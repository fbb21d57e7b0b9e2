// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscring

// ProducerClear discards every pending element as seen from the producer
// side by setting head to the current tail. It mutates only head, the
// counter the producer owns, so it never races the consumer's release
// store on tail; the consumer may observe the transition at any instant
// and is not otherwise affected. Producer-side only.
func (r *Ring[T, I]) ProducerClear() {
	r.head.StoreRelaxed(r.tail.LoadRelaxed())
}

// ConsumerClear discards every pending element as seen from the consumer
// side by setting tail to the current head. It mutates only tail, the
// counter the consumer owns, so it never races the producer's release
// store on head. Consumer-side only.
func (r *Ring[T, I]) ConsumerClear() {
	r.tail.StoreRelaxed(r.head.LoadRelaxed())
}
