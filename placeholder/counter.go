package placeholder

// Counter allocates placeholder indexes in appearance order. It is an
// explicit, injectable object rather than hidden package state so tests
// and containers can own their own index sequence.
//
// Pairing assumes strictly nested appear/disappear ordering (stack-like).
// Interleaved or concurrent releases corrupt the sequence; mutate only
// from the UI event loop. The zero value is ready to use.
type Counter struct {
	next int
}

// Acquire returns the current free index and advances the counter.
func (c *Counter) Acquire() int {
	idx := c.next
	c.next++
	return idx
}

// Release hands the most recently acquired index back so the next
// Acquire reuses it.
func (c *Counter) Release() {
	if c.next > 0 {
		c.next--
	}
}

// Live returns the number of indexes currently on loan.
func (c *Counter) Live() int {
	return c.next
}

// SharedCounter backs placeholders that were not given their own counter
// via WithCounter. Process-wide, like the preview tools it exists for.
var SharedCounter = new(Counter)
