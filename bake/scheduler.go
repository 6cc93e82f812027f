package bake

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window a scheduler waits for after the
// last queued update before it runs a bake.
const DefaultDebounce = 50 * time.Millisecond

// ErrClosed is returned for updates queued on a closed scheduler.
var ErrClosed = errors.New("bake scheduler is closed")

// State is the state of a Scheduler.
type State int

// States of the bake cycle.
const (
	Idle          State = iota // nothing to do
	Pending                    // update queued, debounce window running
	Baking                     // bake in progress
	BakingPending              // bake in progress, another update queued
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Baking:
		return "baking"
	case BakingPending:
		return "baking+pending"
	}
	return "<invalid state>"
}

// Scheduler coalesces bursts of update requests into single bake runs.
//
// A single worker goroutine is started on the first call to Queue and lives
// until Close. Each queued update moves the scheduler out of Idle; the worker
// then waits until no further update has arrived for one debounce interval,
// calls the bake function and returns to Idle, unless updates arrived while
// baking, in which case it starts over. The bake function is never called
// concurrently with itself.
type Scheduler struct {
	debounce time.Duration
	run      func()
	onIdle   func()

	mu      sync.Mutex // guards everything below
	state   State
	touched bool          // update arrived during the current debounce window
	idle    chan struct{} // closed when the scheduler reaches Idle
	started bool
	closed  bool
	kick    chan struct{}
	quit    chan struct{}
	done    chan struct{}
	cycles  uint64
}

// NewScheduler creates a scheduler calling run for every settled burst of
// updates. onIdle, if not nil, is called by the worker after a cycle has
// completed and the scheduler is idle again. A debounce of 0 selects
// DefaultDebounce.
func NewScheduler(debounce time.Duration, run func(), onIdle func()) *Scheduler {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	idle := make(chan struct{})
	close(idle)
	return &Scheduler{
		debounce: debounce,
		run:      run,
		onIdle:   onIdle,
		idle:     idle,
		kick:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Debounce returns the quiescence window of the scheduler.
func (s *Scheduler) Debounce() time.Duration {
	return s.debounce
}

// State returns the current state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cycles returns the number of completed bake runs.
func (s *Scheduler) Cycles() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles
}

// Queue records an update. It never blocks on a running bake.
func (s *Scheduler) Queue() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	switch s.state {
	case Idle:
		s.state = Pending
		s.touched = false
		s.idle = make(chan struct{})
		if !s.started {
			s.started = true
			go s.loop()
		}
		select {
		case s.kick <- struct{}{}:
		default:
		}
	case Pending:
		s.touched = true
	case Baking:
		s.state = BakingPending
	}
	return nil
}

// Wait blocks until the scheduler is idle, i.e. every queued update has been
// baked, or until ctx is done.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker. A debounce window in progress is cut short and the
// pending bake is run; Close returns after the worker has finished.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	started := s.started
	close(s.quit)
	s.mu.Unlock()
	if started {
		<-s.done
	} else {
		close(s.done)
	}
}

func (s *Scheduler) loop() {
	defer close(s.done)
	for {
		select {
		case <-s.kick:
			s.cycle()
		case <-s.quit:
			select { // an update queued right before Close is still baked
			case <-s.kick:
				s.cycle()
			default:
			}
			return
		}
	}
}

// cycle runs debounce-then-bake until no update is left over.
func (s *Scheduler) cycle() {
	for {
		s.settle()
		s.run()
		s.mu.Lock()
		s.cycles++
		if s.state == BakingPending {
			s.state = Pending
			s.touched = false
			s.mu.Unlock()
			tracer().Debugf("updates arrived while baking, starting over")
			continue
		}
		s.state = Idle
		close(s.idle)
		s.mu.Unlock()
		if s.onIdle != nil {
			s.onIdle()
		}
		return
	}
}

// settle waits until a full debounce interval has passed without updates and
// then moves to Baking.
func (s *Scheduler) settle() {
	timer := time.NewTimer(s.debounce)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
		case <-s.quit:
		}
		s.mu.Lock()
		if s.touched && !s.closed {
			s.touched = false
			s.mu.Unlock()
			timer.Reset(s.debounce)
			continue
		}
		s.state = Baking
		s.mu.Unlock()
		return
	}
}
