package ui

import "sync"

// Target receives drained batches of cell updates.
type Target interface {
	ApplyBatch(updates map[Label]string)
}

// Coalescer collects pending cell updates, keeping only the latest
// text per label. Stage may be called from any goroutine, including
// the scanner's progress callback.
type Coalescer struct {
	mu      sync.Mutex
	pending map[Label]string
}

// NewCoalescer creates an empty coalescer.
func NewCoalescer() *Coalescer {
	return &Coalescer{pending: make(map[Label]string)}
}

// Stage records text for a label, overwriting any update staged for
// the same label since the last flush.
func (c *Coalescer) Stage(label Label, text string) {
	c.mu.Lock()
	c.pending[label] = text
	c.mu.Unlock()
}

// Flush atomically takes everything staged so far and applies it to
// the target as one batch. The target is called outside the lock, so
// staging never blocks on rendering. An update arriving while the
// target is being called stays pending for the next flush.
func (c *Coalescer) Flush(t Target) {
	c.mu.Lock()
	staged := c.pending
	c.pending = make(map[Label]string)
	c.mu.Unlock()

	if len(staged) == 0 {
		return
	}
	t.ApplyBatch(staged)
}
