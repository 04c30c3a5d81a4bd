package bech32

import "testing"

func TestBitQueueOrder(t *testing.T) {
	q := newBitQueue(12)
	q.push(0xf7, 8)
	if got := q.pop(5); got != 0x1e {
		t.Errorf("pop(5) = %x want 1e", got)
	}
	if q.len() != 3 {
		t.Fatalf("len = %d want 3", q.len())
	}
	q.push(0x25, 8)
	if got := q.pop(5); got != 0x1c {
		t.Errorf("pop(5) = %x want 1c", got)
	}
	if got := q.pop(5); got != 0x12 {
		t.Errorf("pop(5) = %x want 12", got)
	}
	if q.len() != 1 || q.rest() != 1 {
		t.Errorf("len = %d rest = %b, want 1 and 1", q.len(), q.rest())
	}
	q.padTo(5)
	if got := q.pop(5); got != 0x10 {
		t.Errorf("padded pop(5) = %x want 10", got)
	}
	if q.len() != 0 || q.rest() != 0 {
		t.Errorf("queue not empty: len %d rest %b", q.len(), q.rest())
	}
}

func TestBitQueueBounds(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"overflow", func() {
			q := newBitQueue(12)
			q.push(0xff, 8)
			q.push(0xff, 8)
		}},
		{"underflow", func() {
			q := newBitQueue(12)
			q.push(0x1, 3)
			q.pop(5)
		}},
		{"capacity", func() { newBitQueue(33) }},
	}

	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", c.name)
				}
			}()
			c.f()
		}()
	}
}
