// Package copilot is the top-level orchestration for one trip-planning
// prompt: session, agent run, progressive text output, resource release.
package copilot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"roadtrip/internal/event"
	"roadtrip/internal/history"
	"roadtrip/internal/session"
	"roadtrip/internal/stream"
)

// AgentRuntime opens one streamed agent run. An error from RunAsync means
// the run never started; everything after that flows through the source.
type AgentRuntime interface {
	RunAsync(ctx context.Context, userID, sessionID, message string) (stream.Source, error)
}

// ToolsetCloser releases the tool provider's connections.
type ToolsetCloser interface {
	Close() error
}

type Option func(*Copilot)

// WithOutput redirects progressive text output (default stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Copilot) { c.out = w }
}

// WithDedupe drops the finalized echo of text that already streamed as
// partial deltas. Default is off: both copies are accumulated, which
// matches the runtime's observed behavior.
func WithDedupe(enabled bool) Option {
	return func(c *Copilot) { c.dedupe = enabled }
}

// WithHistory persists completed runs.
func WithHistory(store *history.Store) Option {
	return func(c *Copilot) { c.history = store }
}

// Copilot wires the process-lifetime collaborators together. Constructed
// once at startup and passed around explicitly; there are no package-level
// singletons.
type Copilot struct {
	runtime  AgentRuntime
	sessions *session.Manager
	toolset  ToolsetCloser
	history  *history.Store
	out      io.Writer
	dedupe   bool
}

func New(runtime AgentRuntime, sessions *session.Manager, toolset ToolsetCloser, opts ...Option) *Copilot {
	c := &Copilot{
		runtime:  runtime,
		sessions: sessions,
		toolset:  toolset,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunPrompt submits one user prompt and drains the run to completion,
// printing text fragments as they arrive. It returns the trimmed
// accumulated text.
//
// Error policies differ by layer: the stream wrapper absorbs mid-stream
// failures (the stream just ends), while a failure to open the run is
// reported and returned — fatal for this invocation. Text already printed
// is never retracted.
func (c *Copilot) RunPrompt(ctx context.Context, prompt, userID string) (string, error) {
	sess, err := c.sessions.GetOrCreate(ctx, userID)
	if err != nil {
		return "", err
	}
	slog.Info("session ready", "user_id", userID, "session_id", sess.ID)

	src, err := c.runtime.RunAsync(ctx, userID, sess.ID, prompt)
	if err != nil {
		slog.Error("agent run failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("running agent: %w", err)
	}

	acc := newAccumulator(c.dedupe)
	for ev := range stream.Drain(ctx, src) {
		for n := range event.Classify(ev) {
			if n.Kind != event.KindText {
				continue
			}
			if acc.add(n.Value, ev.Partial) {
				fmt.Fprint(c.out, n.Value)
			}
		}
	}

	if err := c.toolset.Close(); err != nil {
		return "", fmt.Errorf("closing toolset: %w", err)
	}

	text := acc.String()
	if c.history != nil {
		if err := c.history.SaveRun(ctx, userID, sess.ID, prompt, text); err != nil {
			slog.Warn("failed to persist run", "user_id", userID, "error", err)
		}
	}
	return text, nil
}
