package navigation

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must be idle before a search runs.
const DefaultQuietPeriod = 200 * time.Millisecond

// Token identifies one scheduled call. A token is valid until the next
// Schedule or Cancel.
type Token uint64

// Debouncer runs only the most recently scheduled function, and only after
// the quiet period passes without another Schedule. Superseded calls are
// dropped without running.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	current Token
	timer   *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay}
}

// Schedule invalidates any pending call and arranges for fn to run after the
// quiet period, unless it is superseded first. fn receives its own token: a
// Schedule can still land after the check and before fn runs, so callers that
// guard shared state re-check Valid(tok) under their own lock.
func (d *Debouncer) Schedule(fn func(tok Token)) Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.current++
	tok := d.current
	d.timer = time.AfterFunc(d.delay, func() {
		if !d.Valid(tok) {
			return
		}
		fn(tok)
	})
	return tok
}

// Cancel invalidates the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.current++
}

// Valid reports whether tok is still the latest scheduled call.
func (d *Debouncer) Valid(tok Token) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return tok == d.current
}
