// Package poller provides a cancellable repeating timer whose ticks are
// delivered on a channel, so they are handled on the consumer's goroutine
// together with everything else it serialises.
//
// Each Start opens a new chain identified by a token. A tick is only
// honoured while its chain is current: Stop and Start revoke the chain
// synchronously, and a tick that was already in flight is rejected by
// Valid and Next when it finally arrives.
package poller

import (
	"sync"
	"time"
)

// DefaultInterval is the period used when New is given a non-positive one.
const DefaultInterval = time.Second

// Tick is one firing of a chain.
type Tick struct {
	At    time.Time
	token uint64
}

// Poller is a self-terminating tick chain. The zero value is not usable;
// create one with New.
type Poller struct {
	interval time.Duration
	ch       chan Tick
	done     chan struct{}

	mu     sync.Mutex
	token  uint64
	active bool
	timer  *time.Timer
	closed bool
}

// New creates an idle poller.
func New(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		interval: interval,
		ch:       make(chan Tick, 1),
		done:     make(chan struct{}),
	}
}

// Interval returns the period between ticks of a chain.
func (p *Poller) Interval() time.Duration { return p.interval }

// C delivers ticks. Consumers must check each one with Valid or Next.
func (p *Poller) C() <-chan Tick { return p.ch }

// Start revokes any running chain and opens a new one. Its first tick
// fires immediately.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.revokeLocked()
	p.active = true
	p.scheduleLocked(0)
}

// Stop revokes the running chain. No tick of that chain is valid once
// Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revokeLocked()
}

// Valid reports whether t belongs to the current chain.
func (p *Poller) Valid(t Tick) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentLocked(t)
}

// Next schedules the tick after t. It returns false, and schedules
// nothing, when t is stale.
func (p *Poller) Next(t Tick) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.currentLocked(t) {
		return false
	}
	p.scheduleLocked(p.interval)
	return true
}

// Expire ends the chain t belongs to without scheduling another tick.
func (p *Poller) Expire(t Tick) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.currentLocked(t) {
		p.revokeLocked()
	}
}

// Active reports whether a chain is running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Close revokes the chain for good and unblocks any pending delivery.
func (p *Poller) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.revokeLocked()
	p.closed = true
	close(p.done)
}

func (p *Poller) currentLocked(t Tick) bool {
	return p.active && t.token == p.token
}

func (p *Poller) revokeLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.active = false
	p.token++
}

func (p *Poller) scheduleLocked(d time.Duration) {
	token := p.token
	p.timer = time.AfterFunc(d, func() { p.fire(token) })
}

func (p *Poller) fire(token uint64) {
	p.mu.Lock()
	current := p.active && token == p.token
	p.mu.Unlock()
	if !current {
		return
	}

	select {
	case p.ch <- Tick{At: time.Now(), token: token}:
	case <-p.done:
	}
}
