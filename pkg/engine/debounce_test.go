package engine_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/engine"
)

// recorder collects debounced payloads under a lock so the timer goroutine
// can deliver them safely.
type recorder struct {
	mu       sync.Mutex
	payloads []string
}

func (r *recorder) record(payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.payloads))
	copy(out, r.payloads)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Fail(t, "condition not met before deadline")
}

func TestDebouncerCoalesces(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := engine.NewDebouncer(30*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("one")
	d.Trigger("two")
	d.Trigger("three")

	waitFor(t, func() bool { return len(rec.snapshot()) == 1 })
	assert.Equal(t, []string{"three"}, rec.snapshot(), "only the last payload survives")

	// No stray second firing.
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}

func TestDebouncerFlush(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := engine.NewDebouncer(time.Hour, rec.record)
	defer d.Stop()

	d.Trigger("pending")
	d.Flush()
	assert.Equal(t, []string{"pending"}, rec.snapshot())

	// Flushing with nothing pending does nothing.
	d.Flush()
	assert.Len(t, rec.snapshot(), 1)
}

func TestDebouncerStop(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := engine.NewDebouncer(20*time.Millisecond, rec.record)

	d.Trigger("doomed")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerRetriggersAfterFiring(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := engine.NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("first")
	waitFor(t, func() bool { return len(rec.snapshot()) == 1 })

	d.Trigger("second")
	waitFor(t, func() bool { return len(rec.snapshot()) == 2 })
	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}
