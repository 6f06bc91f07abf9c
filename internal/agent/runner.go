// Package agent drives the model's reason/act loop and exposes each run as
// a stream of boundary events. Consumers never touch the provider's native
// response types; the loop translates everything into event.Event at this
// boundary.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"roadtrip/internal/event"
	"roadtrip/internal/llm"
	"roadtrip/internal/stream"
	"roadtrip/internal/trace"
)

type Option func(*Runner)

func WithSystemPrompt(s string) Option {
	return func(r *Runner) { r.systemPrompt = s }
}

// Runner owns the agent loop. Each iteration is a single model call with
// tools; the model reasons and picks actions in one step, tool results
// (including errors) go back into context, and the loop ends when the model
// stops calling tools.
type Runner struct {
	provider     llm.Provider
	registry     *Registry
	tools        []responses.ToolUnionParam
	systemPrompt string
}

func NewRunner(provider llm.Provider, registry *Registry, opts ...Option) *Runner {
	r := &Runner{
		provider: provider,
		registry: registry,
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, t := range registry.All() {
		schema, _ := t.InputSchema().(map[string]any)
		r.tools = append(r.tools, responses.ToolUnionParam{
			OfFunction: &responses.FunctionToolParam{
				Name:        t.Name(),
				Description: openai.String(t.Description()),
				Parameters:  schema,
				Strict:      openai.Bool(true),
			},
		})
	}

	return r
}

// RunAsync submits one user message and returns the run as an event source.
// An error here means the run could not be opened at all; failures after
// that surface through the source and are handled by the stream wrapper.
func (r *Runner) RunAsync(ctx context.Context, userID, sessionID, message string) (stream.Source, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is empty")
	}

	runCtx, cancel := context.WithCancel(ctx)
	src := newRunSource(cancel)

	input := []responses.ResponseInputItemUnionParam{
		responses.ResponseInputItemParamOfMessage(message, "user"),
	}
	if r.systemPrompt != "" {
		input = []responses.ResponseInputItemUnionParam{
			responses.ResponseInputItemParamOfMessage(r.systemPrompt, "developer"),
			responses.ResponseInputItemParamOfMessage(message, "user"),
		}
	}

	go func() {
		spanCtx, span := trace.Tracer().Start(runCtx, "agent.run",
			oteltrace.WithAttributes(
				attribute.String("session.id", sessionID),
				attribute.String("user.id", userID),
			),
		)

		err := r.loop(spanCtx, src, input)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		src.finish(err)
	}()

	return src, nil
}

func (r *Runner) loop(ctx context.Context, src *runSource, input []responses.ResponseInputItemUnionParam) error {
	iteration := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var text strings.Builder
		resp, err := r.provider.ChatStream(ctx, input, r.tools, func(token string) {
			text.WriteString(token)
			src.emit(ctx, event.Text(token, true))
		})
		if err != nil {
			return fmt.Errorf("model turn %d: %w", iteration, err)
		}
		iteration++

		// Feed the model's output (including its reasoning) back into context.
		input = append(input, outputToInput(resp.Output)...)

		var calls []responses.ResponseOutputItemUnion
		for _, item := range resp.Output {
			if item.Type == "function_call" {
				calls = append(calls, item)
			}
		}

		// No tool calls — the agent considers the task done. The finalized
		// text is emitted again, non-partial, alongside the finish markers;
		// downstream accumulation decides what to do with the echo.
		if len(calls) == 0 {
			final := event.Event{
				IsFinalResponse: true,
				FinishReason:    "stop",
			}
			if text.Len() > 0 {
				final.Content = &event.Content{Parts: []event.Part{{Text: text.String()}}}
			}
			src.emit(ctx, final)
			return nil
		}

		for _, call := range calls {
			fc := call.AsFunctionCall()
			src.emit(ctx, event.Event{Actions: []event.Action{{
				FunctionCall: &event.FunctionCall{
					Name: fc.Name,
					Args: decodeObject(fc.Arguments),
				},
			}}})
		}

		results := r.act(ctx, src, calls)
		input = append(input, results...)
	}
}

// act executes tool calls in parallel, emitting a result event for each,
// and returns the outputs formatted for the next model turn. Tool failures
// are not run failures: they come back as {"error": ...} payloads the model
// can reason about.
func (r *Runner) act(ctx context.Context, src *runSource, calls []responses.ResponseOutputItemUnion) []responses.ResponseInputItemUnionParam {
	var wg sync.WaitGroup
	results := make([]responses.ResponseInputItemUnionParam, len(calls))

	for i, call := range calls {
		wg.Add(1)
		go func(i int, call responses.ResponseOutputItemUnion) {
			defer wg.Done()
			fc := call.AsFunctionCall()

			output := r.execute(ctx, fc.Name, fc.Arguments)
			results[i] = responses.ResponseInputItemParamOfFunctionCallOutput(fc.CallID, output)

			src.emit(ctx, event.Event{Actions: []event.Action{{
				FunctionResponse: &event.FunctionResponse{
					ID:       fc.CallID,
					Response: decodeObject(output),
				},
			}}})
		}(i, call)
	}

	wg.Wait()
	return results
}

func (r *Runner) execute(ctx context.Context, name, arguments string) string {
	tool, ok := r.registry.Get(name)
	if !ok {
		slog.Warn("unknown tool call", "name", name)
		return `{"error":"unknown tool"}`
	}

	result, err := withTrace(tool).Execute(ctx, arguments)
	if err != nil {
		slog.Warn("tool execution failed", "name", name, "error", err)
		b, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(b)
	}
	return result
}

// decodeObject best-effort parses a JSON object; non-object payloads are
// wrapped so the event always carries a map.
func decodeObject(raw string) map[string]any {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return map[string]any{"output": raw}
	}
	return m
}
