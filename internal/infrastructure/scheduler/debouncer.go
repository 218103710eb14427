package scheduler

import (
	"sync"
	"time"
)

const DefaultDebounceWindow = 500 * time.Millisecond

// Debouncer coalesces work per key: each Schedule call restarts the key's timer
// and only the last scheduled function runs once the window elapses quietly.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timers  map[string]*pending
	seq     uint64
	stopped bool
}

type pending struct {
	timer *time.Timer
	gen   uint64
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		window: window,
		timers: make(map[string]*pending),
	}
}

// Schedule replaces any pending call for key with fn. It is a no-op after Stop.
func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if p, ok := d.timers[key]; ok {
		p.timer.Stop()
	}
	d.seq++
	gen := d.seq

	p := &pending{gen: gen}
	p.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		cur, ok := d.timers[key]
		if !ok || cur.gen != gen {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()

		fn()
	})
	d.timers[key] = p
}

// Cancel drops the pending call for key, if any.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.timers[key]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(d.timers, key)
	return true
}

// Pending reports how many keys are waiting to fire.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop cancels every pending call and refuses new ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, p := range d.timers {
		p.timer.Stop()
		delete(d.timers, key)
	}
}
