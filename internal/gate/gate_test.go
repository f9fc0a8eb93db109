package gate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/theirongolddev/taka/internal/gate"
	"github.com/theirongolddev/taka/internal/gate/gatetest"
	"github.com/theirongolddev/taka/internal/store"
)

func newGate(t *testing.T, s store.Store) (*gate.Gate, *gatetest.Scheduler) {
	t.Helper()
	sched := &gatetest.Scheduler{}
	g, err := gate.New(context.Background(), s,
		gate.WithScheduler(sched),
		gate.WithHashCost(bcrypt.MinCost),
	)
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g, sched
}

func withPIN(t *testing.T, pin string) *store.Memory {
	t.Helper()
	m := store.NewMemory()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, m.Save(context.Background(), store.KeyPIN, hash))
	return m
}

func TestFirstEntryAdoptsPIN(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	g, _ := newGate(t, m)

	assert.Equal(t, gate.AwaitingFirstEntry, g.Status().Phase)
	assert.False(t, g.HasPIN())

	st, err := g.Enter(ctx, "4821")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
	assert.Equal(t, 0, st.Entered)
	assert.True(t, g.HasPIN())

	raw, ok, err := m.Load(ctx, store.KeyPIN)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "4821", string(raw), "pin must not be stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword(raw, []byte("4821")))

	// A fresh process now verifies against the adopted PIN.
	next, _ := newGate(t, m)
	assert.Equal(t, gate.AwaitingVerification, next.Status().Phase)
	st, err = next.Enter(ctx, "4821")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestCorrectPINUnlocks(t *testing.T) {
	g, sched := newGate(t, withPIN(t, "1234"))

	st, err := g.Enter(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
	assert.True(t, g.Unlocked())
	assert.Zero(t, sched.Pending())
}

func TestWrongPINResetsAfterDelay(t *testing.T) {
	ctx := context.Background()
	g, sched := newGate(t, withPIN(t, "1234"))

	st, err := g.Enter(ctx, "0000")
	require.NoError(t, err)
	assert.Equal(t, gate.Mismatch, st.Phase)
	assert.Equal(t, 4, st.Entered)
	assert.False(t, g.Unlocked())
	require.Equal(t, 1, sched.Pending())
	assert.Equal(t, gate.DefaultErrorDelay, sched.LastDelay())

	// Keys during the mismatch phase are dropped.
	st, _ = g.Press(ctx, '1')
	assert.Equal(t, gate.Mismatch, st.Phase)
	assert.Equal(t, 4, st.Entered)

	require.Equal(t, 1, sched.Fire())
	st = g.Status()
	assert.Equal(t, gate.AwaitingVerification, st.Phase)
	assert.Equal(t, 0, st.Entered)
	assert.False(t, g.Unlocked())

	st, err = g.Enter(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestRepeatedFailuresAreNotPenalised(t *testing.T) {
	ctx := context.Background()
	g, sched := newGate(t, withPIN(t, "1234"))

	for i := 0; i < 20; i++ {
		st, err := g.Enter(ctx, "9999")
		require.NoError(t, err)
		require.Equal(t, gate.Mismatch, st.Phase)
		require.Equal(t, 1, sched.Fire())
	}
	st, err := g.Enter(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestNonDigitsAreDiscarded(t *testing.T) {
	ctx := context.Background()
	g, _ := newGate(t, withPIN(t, "1234"))

	for _, r := range "a-1 x২" {
		_, err := g.Press(ctx, r)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, g.Status().Entered)

	st, err := g.Enter(ctx, "2.3#4")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestBackspace(t *testing.T) {
	ctx := context.Background()
	g, _ := newGate(t, withPIN(t, "1234"))

	_, _ = g.Enter(ctx, "129")
	assert.Equal(t, 2, g.Backspace().Entered)
	st, err := g.Enter(ctx, "34")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestLockClearsBuffer(t *testing.T) {
	ctx := context.Background()
	g, _ := newGate(t, withPIN(t, "1234"))

	_, _ = g.Enter(ctx, "1234")
	require.True(t, g.Unlocked())

	st := g.Lock()
	assert.Equal(t, gate.AwaitingVerification, st.Phase)
	assert.Equal(t, 0, st.Entered)

	_, _ = g.Enter(ctx, "12")
	st = g.Lock()
	assert.Equal(t, 0, st.Entered)
}

func TestLockCancelsPendingReset(t *testing.T) {
	ctx := context.Background()
	g, sched := newGate(t, withPIN(t, "1234"))

	_, _ = g.Enter(ctx, "0000")
	require.Equal(t, 1, sched.Pending())

	g.Lock()
	assert.Zero(t, sched.Pending())
	assert.Equal(t, gate.AwaitingVerification, g.Status().Phase)
}

func TestCloseCancelsPendingReset(t *testing.T) {
	ctx := context.Background()
	g, sched := newGate(t, withPIN(t, "1234"))

	_, _ = g.Enter(ctx, "0000")
	g.Close()
	assert.Zero(t, sched.Pending())
	assert.Equal(t, gate.Mismatch, g.Status().Phase)

	st, err := g.Enter(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Mismatch, st.Phase)
}

func TestStaleResetIsIgnored(t *testing.T) {
	ctx := context.Background()
	sched := &staleScheduler{}
	g, err := gate.New(ctx, withPIN(t, "1234"), gate.WithScheduler(sched))
	require.NoError(t, err)

	_, _ = g.Enter(ctx, "0000")
	g.Lock()
	_, _ = g.Enter(ctx, "12")

	// The cancelled reset runs anyway, as a real timer may race Stop.
	sched.f()
	assert.Equal(t, 2, g.Status().Entered)
}

func TestLegacyPlainPIN(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.Save(ctx, store.KeyPIN, []byte("1234")))
	g, sched := newGate(t, m)

	st, _ := g.Enter(ctx, "1243")
	assert.Equal(t, gate.Mismatch, st.Phase)
	sched.Fire()

	st, _ = g.Enter(ctx, "1234")
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestAdoptedPINSurvivesStorageFailure(t *testing.T) {
	m := store.NewMemory()
	m.FailSaves = errors.New("read-only")
	g, _ := newGate(t, m)

	st, err := g.Enter(context.Background(), "1111")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.Equal(t, gate.Unlocked, st.Phase)

	g.Lock()
	st, err = g.Enter(context.Background(), "1111")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Phase)
}

func TestRealTimerResets(t *testing.T) {
	ctx := context.Background()
	g, err := gate.New(ctx, withPIN(t, "1234"), gate.WithErrorDelay(5*time.Millisecond))
	require.NoError(t, err)
	defer g.Close()

	st, _ := g.Enter(ctx, "4321")
	require.Equal(t, gate.Mismatch, st.Phase)
	assert.Eventually(t, func() bool {
		return g.Status().Phase == gate.AwaitingVerification
	}, time.Second, 5*time.Millisecond)
}

type staleScheduler struct{ f func() }

func (s *staleScheduler) AfterFunc(_ time.Duration, f func()) gate.Timer {
	s.f = f
	return stopNoop{}
}

type stopNoop struct{}

func (stopNoop) Stop() bool { return false }
