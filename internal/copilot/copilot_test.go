package copilot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadtrip/internal/event"
	"roadtrip/internal/session"
	"roadtrip/internal/stream"
)

type fakeRuntime struct {
	events  []event.Event
	openErr error
}

func (f *fakeRuntime) RunAsync(ctx context.Context, userID, sessionID, message string) (stream.Source, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &sliceSource{events: f.events}, nil
}

type sliceSource struct {
	events []event.Event
	pos    int
	closed int
}

func (s *sliceSource) Recv(ctx context.Context) (event.Event, error) {
	if s.pos >= len(s.events) {
		return event.Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func (s *sliceSource) Close(ctx context.Context) error {
	s.closed++
	return nil
}

type countingCloser struct {
	calls int
	err   error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func runEvents() []event.Event {
	final := event.Event{
		Content:         &event.Content{Parts: []event.Part{{Text: " Coorg trip"}}},
		IsFinalResponse: true,
		FinishReason:    "stop",
	}
	return []event.Event{
		event.Text(" Coorg", true),
		event.Text(" trip", true),
		final,
	}
}

func newTestCopilot(rt AgentRuntime, closer ToolsetCloser, opts ...Option) *Copilot {
	sessions := session.NewManager(session.NewInMemoryService(), "roadtrip_app")
	return New(rt, sessions, closer, opts...)
}

func TestRunPromptAccumulatesPartialAndFinal(t *testing.T) {
	var out strings.Builder
	closer := &countingCloser{}
	c := newTestCopilot(&fakeRuntime{events: runEvents()}, closer, WithOutput(&out))

	text, err := c.RunPrompt(context.Background(), "plan a trip", "demo_user")
	require.NoError(t, err)

	// Both the deltas and the finalized echo are appended; surrounding
	// whitespace is trimmed from the result.
	assert.Equal(t, "Coorg trip Coorg trip", text)
	assert.Equal(t, " Coorg trip Coorg trip", out.String())
	assert.Equal(t, 1, closer.calls)
}

func TestRunPromptDedupeSkipsFinalEcho(t *testing.T) {
	var out strings.Builder
	c := newTestCopilot(&fakeRuntime{events: runEvents()}, &countingCloser{},
		WithOutput(&out), WithDedupe(true))

	text, err := c.RunPrompt(context.Background(), "plan a trip", "demo_user")
	require.NoError(t, err)

	assert.Equal(t, "Coorg trip", text)
	assert.Equal(t, " Coorg trip", out.String())
}

func TestRunPromptOpenFailureIsFatal(t *testing.T) {
	closer := &countingCloser{}
	c := newTestCopilot(&fakeRuntime{openErr: errors.New("model unavailable")}, closer,
		WithOutput(io.Discard))

	_, err := c.RunPrompt(context.Background(), "plan a trip", "demo_user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
	assert.Zero(t, closer.calls)
}

func TestRunPromptCloseFailurePropagates(t *testing.T) {
	closer := &countingCloser{err: errors.New("connection leak")}
	c := newTestCopilot(&fakeRuntime{events: runEvents()}, closer, WithOutput(io.Discard))

	_, err := c.RunPrompt(context.Background(), "plan a trip", "demo_user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection leak")
}

func TestRunPromptIgnoresNonTextEvents(t *testing.T) {
	events := []event.Event{
		{Actions: []event.Action{{FunctionCall: &event.FunctionCall{Name: "plan_route"}}}},
		event.Text("ok", false),
		{Branch: "side"},
	}
	c := newTestCopilot(&fakeRuntime{events: events}, &countingCloser{}, WithOutput(io.Discard))

	text, err := c.RunPrompt(context.Background(), "plan a trip", "demo_user")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestAccumulatorDefaultKeepsEverything(t *testing.T) {
	a := newAccumulator(false)
	assert.True(t, a.add("a", true))
	assert.True(t, a.add("a", false))
	assert.Equal(t, "aa", a.String())
}

func TestAccumulatorDedupeKeepsFinalOnlyText(t *testing.T) {
	// A run that produced no deltas still keeps its finalized text.
	a := newAccumulator(true)
	assert.True(t, a.add("only final", false))
	assert.Equal(t, "only final", a.String())
}
