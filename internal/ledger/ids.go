package ledger

import (
	"sync"
	"time"
)

// IDGenerator hands out transaction ids.
//
// Ids are derived from the clock in milliseconds but never repeat: when two
// ids are requested within the same millisecond, or the clock goes backwards,
// the previous id plus one is used.
type IDGenerator struct {
	mu    sync.Mutex
	last  int64
	clock func() time.Time
}

// NewIDGenerator returns a generator reading the given clock. A nil clock
// uses time.Now.
func NewIDGenerator(clock func() time.Time) *IDGenerator {
	if clock == nil {
		clock = time.Now
	}

	return &IDGenerator{clock: clock}
}

// Next returns the next id.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.clock().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}

	g.last = id
	return id
}

// Observe records an id that is already in use so that it is never handed out.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
