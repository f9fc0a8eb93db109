// Package gate implements the PIN lock that guards the rest of the app.
//
// The gate is a small state machine. It starts locked on every process
// start, collects up to four digits, and either adopts them as the PIN
// (first run) or compares them against the stored one. A mismatch is a
// transient phase that clears itself after a delay.
package gate

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/theirongolddev/taka/internal/store"
)

// PINLength is the fixed number of digits in a PIN.
const PINLength = 4

// DefaultErrorDelay is how long the mismatch phase lasts.
const DefaultErrorDelay = 800 * time.Millisecond

// Phase is the gate's current state.
type Phase int

const (
	AwaitingFirstEntry Phase = iota
	AwaitingVerification
	Mismatch
	Unlocked
)

func (p Phase) String() string {
	switch p {
	case AwaitingFirstEntry:
		return "awaiting first entry"
	case AwaitingVerification:
		return "awaiting verification"
	case Mismatch:
		return "mismatch"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Locked reports whether the phase belongs to the locked state.
func (p Phase) Locked() bool { return p != Unlocked }

// Status is a snapshot of the gate for display.
type Status struct {
	Phase   Phase
	Entered int // digits currently in the buffer
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Gate.
type Option func(*Gate)

// WithErrorDelay sets the mismatch display duration.
func WithErrorDelay(d time.Duration) Option {
	return func(g *Gate) {
		if d >= 0 {
			g.delay = d
		}
	}
}

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(g *Gate) {
		if s != nil {
			g.sched = s
		}
	}
}

// WithHashCost sets the bcrypt cost used when a new PIN is adopted.
func WithHashCost(cost int) Option {
	return func(g *Gate) { g.cost = cost }
}

// Gate is safe for concurrent use: the delayed reset runs on its own
// goroutine.
type Gate struct {
	mu     sync.Mutex
	store  store.Store
	secret []byte // bcrypt hash, or a legacy plain PIN; nil when unset
	phase  Phase
	buf    []byte

	delay time.Duration
	sched Scheduler
	cost  int

	reset  Timer
	gen    uint64
	closed bool
}

// New loads the stored PIN and returns a locked gate.
func New(ctx context.Context, s store.Store, opts ...Option) (*Gate, error) {
	g := &Gate{
		store: s,
		delay: DefaultErrorDelay,
		sched: wallScheduler{},
		cost:  bcrypt.DefaultCost,
		buf:   make([]byte, 0, PINLength),
	}
	for _, o := range opts {
		o(g)
	}

	raw, ok, err := s.Load(ctx, store.KeyPIN)
	if err != nil {
		return nil, fmt.Errorf("loading pin: %w", err)
	}
	if ok && len(raw) > 0 {
		g.secret = raw
	}
	g.phase = g.lockedPhase()
	return g, nil
}

// Status returns the current phase and buffer length.
func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Status{Phase: g.phase, Entered: len(g.buf)}
}

// Unlocked reports whether the gate is open.
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == Unlocked
}

// HasPIN reports whether a PIN has been set.
func (g *Gate) HasPIN() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.secret != nil
}

// Press feeds one key. Anything other than an ASCII digit is ignored, as is
// every key while unlocked or in the mismatch phase. The returned error is
// only ever a failure to persist a newly adopted PIN; the gate is unlocked
// regardless.
func (g *Gate) Press(ctx context.Context, r rune) (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || r < '0' || r > '9' {
		return g.statusLocked(), nil
	}
	if g.phase != AwaitingFirstEntry && g.phase != AwaitingVerification {
		return g.statusLocked(), nil
	}

	g.buf = append(g.buf, byte(r))
	if len(g.buf) < PINLength {
		return g.statusLocked(), nil
	}

	if g.phase == AwaitingFirstEntry {
		err := g.adoptLocked(ctx)
		return g.statusLocked(), err
	}
	if g.matchLocked() {
		g.buf = g.buf[:0]
		g.phase = Unlocked
		return g.statusLocked(), nil
	}
	g.phase = Mismatch
	g.scheduleResetLocked()
	return g.statusLocked(), nil
}

// Enter feeds a string of keys, stopping early once the buffer completes.
func (g *Gate) Enter(ctx context.Context, keys string) (Status, error) {
	st := g.Status()
	for _, r := range keys {
		var err error
		st, err = g.Press(ctx, r)
		if err != nil {
			return st, err
		}
		if st.Phase == Unlocked || st.Phase == Mismatch {
			break
		}
	}
	return st, nil
}

// Backspace drops the last entered digit.
func (g *Gate) Backspace() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase.Locked() && g.phase != Mismatch && len(g.buf) > 0 {
		g.buf = g.buf[:len(g.buf)-1]
	}
	return g.statusLocked()
}

// Lock closes the gate and clears the buffer. A pending reset is cancelled.
func (g *Gate) Lock() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelResetLocked()
	g.buf = g.buf[:0]
	g.phase = g.lockedPhase()
	return g.statusLocked()
}

// Close cancels any pending reset. The gate ignores input afterwards.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelResetLocked()
	g.closed = true
}

func (g *Gate) statusLocked() Status {
	return Status{Phase: g.phase, Entered: len(g.buf)}
}

func (g *Gate) lockedPhase() Phase {
	if g.secret == nil {
		return AwaitingFirstEntry
	}
	return AwaitingVerification
}

func (g *Gate) adoptLocked(ctx context.Context) error {
	pin := string(g.buf)
	g.buf = g.buf[:0]

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), g.cost)
	if err != nil {
		// Stays in first-entry so the user can try again.
		return fmt.Errorf("hashing pin: %w", err)
	}
	g.secret = hash
	g.phase = Unlocked

	if err := g.store.Save(ctx, store.KeyPIN, hash); err != nil {
		return fmt.Errorf("saving pin: %w", err)
	}
	return nil
}

func (g *Gate) matchLocked() bool {
	if isHash(g.secret) {
		err := bcrypt.CompareHashAndPassword(g.secret, g.buf)
		return err == nil
	}
	// Plain PINs written by older versions.
	return subtle.ConstantTimeCompare(g.secret, g.buf) == 1
}

func (g *Gate) scheduleResetLocked() {
	g.cancelResetLocked()
	g.gen++
	gen := g.gen
	g.reset = g.sched.AfterFunc(g.delay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.closed || gen != g.gen || g.phase != Mismatch {
			return
		}
		g.reset = nil
		g.buf = g.buf[:0]
		g.phase = AwaitingVerification
	})
}

func (g *Gate) cancelResetLocked() {
	if g.reset != nil {
		g.reset.Stop()
		g.reset = nil
	}
	g.gen++
}

func isHash(b []byte) bool {
	_, err := bcrypt.Cost(b)
	return err == nil
}
