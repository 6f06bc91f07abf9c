package llm

import (
	"context"

	"github.com/openai/openai-go/v3/responses"
)

// Provider streams one model turn. onToken receives output text deltas as
// they arrive; the returned response is the completed turn.
type Provider interface {
	ChatStream(ctx context.Context, input []responses.ResponseInputItemUnionParam, tools []responses.ToolUnionParam, onToken func(string)) (*responses.Response, error)
}
