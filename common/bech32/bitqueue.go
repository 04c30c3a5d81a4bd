package bech32

import "fmt"

// bitQueue is a first-in first-out queue of bits kept in the low end of a
// uint32. Bits leave from the most significant end in the order they were
// pushed. The capacity is fixed at construction and every push is checked
// against it; exceeding it is a programming error and panics.
type bitQueue struct {
	buf      uint32
	n        uint
	capacity uint
}

func newBitQueue(capacity uint) *bitQueue {
	if capacity == 0 || capacity > 32 {
		panic(fmt.Sprintf("bech32: bit queue capacity %d out of range", capacity))
	}
	return &bitQueue{capacity: capacity}
}

// push appends the low width bits of v.
func (q *bitQueue) push(v uint32, width uint) {
	if q.n+width > q.capacity {
		panic(fmt.Sprintf("bech32: bit queue overflow: %d+%d > %d", q.n, width, q.capacity))
	}
	q.buf = q.buf<<width | v&mask(width)
	q.n += width
}

// pop removes and returns the oldest width bits.
func (q *bitQueue) pop(width uint) uint32 {
	if width > q.n {
		panic(fmt.Sprintf("bech32: bit queue underflow: pop %d of %d", width, q.n))
	}
	q.n -= width
	v := q.buf >> q.n & mask(width)
	q.buf &= mask(q.n)
	return v
}

// padTo right-pads the queue with zero bits until it holds width bits.
func (q *bitQueue) padTo(width uint) {
	if q.n < width {
		q.push(0, width-q.n)
	}
}

// rest returns the bits still buffered without consuming them.
func (q *bitQueue) rest() uint32 {
	return q.buf
}

func (q *bitQueue) len() uint {
	return q.n
}

func mask(width uint) uint32 {
	return uint32(1)<<width - 1
}
