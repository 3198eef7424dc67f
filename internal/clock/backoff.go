package clock

import "time"

// Backoff yields doubling delays starting at Initial and capped at Max.
// A zero Max leaves the delay uncapped.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	next time.Duration
}

// Next returns the delay to wait before the following attempt.
func (b *Backoff) Next() time.Duration {
	if b.next <= 0 {
		b.next = b.Initial
	}
	d := b.next
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	if b.Max <= 0 || b.next < b.Max {
		b.next *= 2
	}
	return d
}
