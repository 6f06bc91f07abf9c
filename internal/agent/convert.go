package agent

import (
	"log/slog"

	"github.com/openai/openai-go/v3/responses"
)

// outputToInput re-feeds the model's output as input items for the next
// turn. ToParam() round-trips each item losslessly through its raw JSON.
func outputToInput(output []responses.ResponseOutputItemUnion) []responses.ResponseInputItemUnionParam {
	var items []responses.ResponseInputItemUnionParam
	for _, item := range output {
		switch item.Type {
		case "message":
			v := item.AsMessage().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfOutputMessage: &v})
		case "function_call":
			v := item.AsFunctionCall().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfFunctionCall: &v})
		case "reasoning":
			v := item.AsReasoning().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfReasoning: &v})
		case "web_search_call":
			v := item.AsWebSearchCall().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfWebSearchCall: &v})
		default:
			slog.Debug("skipping unknown output item type", "type", item.Type)
		}
	}
	return items
}
