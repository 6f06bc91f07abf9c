package stream

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadtrip/internal/event"
)

// fakeSource yields scripted events, then errs (io.EOF for clean
// exhaustion). It records how it was closed.
type fakeSource struct {
	events []event.Event
	err    error

	pos        int
	closeCalls int
	closeErr   error
	closedCtx  context.Context
}

func (f *fakeSource) Recv(ctx context.Context) (event.Event, error) {
	if f.pos >= len(f.events) {
		return event.Event{}, f.err
	}
	ev := f.events[f.pos]
	f.pos++
	return ev, nil
}

func (f *fakeSource) Close(ctx context.Context) error {
	f.closeCalls++
	f.closedCtx = ctx
	return f.closeErr
}

func texts(n int) []event.Event {
	out := make([]event.Event, n)
	for i := range out {
		out[i] = event.Text("t", true)
	}
	return out
}

func TestDrainForwardsAllEvents(t *testing.T) {
	src := &fakeSource{events: texts(3), err: io.EOF}

	var got int
	for range Drain(context.Background(), src) {
		got++
	}

	assert.Equal(t, 3, got)
	assert.Equal(t, 1, src.closeCalls)
}

func TestDrainAbsorbsMidStreamError(t *testing.T) {
	src := &fakeSource{events: texts(3), err: errors.New("connection reset")}

	var got int
	for range Drain(context.Background(), src) {
		got++
	}

	// Exactly the three yielded events, then a clean end. No panic, no
	// error surfaced to the consumer.
	assert.Equal(t, 3, got)
	assert.Equal(t, 1, src.closeCalls)
}

func TestDrainClosesOnAbandonment(t *testing.T) {
	src := &fakeSource{events: texts(5), err: io.EOF}

	var got int
	for range Drain(context.Background(), src) {
		got++
		break
	}

	assert.Equal(t, 1, got)
	assert.Equal(t, 1, src.closeCalls)
}

func TestDrainCloseShieldedFromCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := &fakeSource{events: texts(5), err: io.EOF}

	var got int
	for range Drain(ctx, src) {
		got++
		// The consumer abandons because it was cancelled; the close must
		// still run to completion under a live context.
		cancel()
		break
	}

	assert.Equal(t, 1, got)
	require.Equal(t, 1, src.closeCalls)
	require.NotNil(t, src.closedCtx)
	assert.NoError(t, src.closedCtx.Err(), "close context must survive the outer cancellation")
}

func TestDrainSwallowsCloseError(t *testing.T) {
	src := &fakeSource{events: texts(1), err: io.EOF, closeErr: errors.New("teardown failed")}

	assert.NotPanics(t, func() {
		for range Drain(context.Background(), src) {
		}
	})
	assert.Equal(t, 1, src.closeCalls)
}

func TestDrainEmptySource(t *testing.T) {
	src := &fakeSource{err: io.EOF}

	var got int
	for range Drain(context.Background(), src) {
		got++
	}

	assert.Zero(t, got)
	assert.Equal(t, 1, src.closeCalls)
}
