package curve

import (
	"slices"
	"sync"
)

// Signal identifies a notification emitted by a curve.
type Signal int

// Signals emitted by curves.
const (
	SignalChanged       Signal = iota // any mutation
	SignalPointsChanged               // points added or removed
	SignalRangeChanged                // min or max value set
	SignalBaked                       // a bake has been published
)

func (s Signal) String() string {
	switch s {
	case SignalChanged:
		return "changed"
	case SignalPointsChanged:
		return "points_changed"
	case SignalRangeChanged:
		return "range_changed"
	case SignalBaked:
		return "baked"
	}
	return "<unknown signal>"
}

// Handler receives signals of a curve. Handlers of SignalBaked are called on
// the bake worker's goroutine; they must not block for long.
type Handler func(c *Curve, sig Signal)

type connection struct {
	id  int
	sig Signal
	fn  Handler
}

type emitter struct {
	mu    sync.RWMutex
	next  int
	conns []connection
}

// Connect subscribes fn to sig and returns an id for Disconnect.
func (c *Curve) Connect(sig Signal, fn Handler) int {
	c.signals.mu.Lock()
	defer c.signals.mu.Unlock()
	c.signals.next++
	c.signals.conns = append(c.signals.conns, connection{id: c.signals.next, sig: sig, fn: fn})
	return c.signals.next
}

// Disconnect removes a subscription. It reports whether id was connected.
func (c *Curve) Disconnect(id int) bool {
	c.signals.mu.Lock()
	defer c.signals.mu.Unlock()
	n := len(c.signals.conns)
	c.signals.conns = slices.DeleteFunc(c.signals.conns, func(con connection) bool {
		return con.id == id
	})
	return len(c.signals.conns) < n
}

// emit calls the handlers for sig. Must not be called with the point lock held.
func (c *Curve) emit(sig Signal) {
	c.signals.mu.RLock()
	var handlers []Handler
	for _, con := range c.signals.conns {
		if con.sig == sig {
			handlers = append(handlers, con.fn)
		}
	}
	c.signals.mu.RUnlock()
	for _, fn := range handlers {
		fn(c, sig)
	}
}
