package event

// Event is one unit of runtime output during a streamed agent run. It is
// built once at the runtime boundary; consumers never see the provider's
// native representation. Every field is optional — the zero value means the
// attribute was absent, which is never an error.
type Event struct {
	Content           *Content       `json:"content,omitempty"`
	Actions           []Action       `json:"actions,omitempty"`
	GroundingMetadata map[string]any `json:"grounding_metadata,omitempty"`
	Branch            string         `json:"branch,omitempty"`
	FinishReason      string         `json:"finish_reason,omitempty"`
	IsFinalResponse   bool           `json:"is_final_response,omitempty"`
	Interrupted       bool           `json:"interrupted,omitempty"`
	ErrorCode         string         `json:"error_code,omitempty"`
	ErrorMessage      string         `json:"error_message,omitempty"`
	CustomMetadata    map[string]any `json:"custom_metadata,omitempty"`

	// Partial marks text as a streaming delta rather than a finalized chunk.
	Partial bool `json:"partial,omitempty"`
}

type Content struct {
	Parts []Part `json:"parts,omitempty"`
}

type Part struct {
	Text string `json:"text,omitempty"`
}

type Action struct {
	FunctionCall     *FunctionCall     `json:"function_call,omitempty"`
	FunctionResponse *FunctionResponse `json:"function_response,omitempty"`
}

type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type FunctionResponse struct {
	ID       string         `json:"id"`
	Response map[string]any `json:"response,omitempty"`
}

// Text builds a text-bearing event. partial marks it as a streaming delta.
func Text(text string, partial bool) Event {
	return Event{
		Content: &Content{Parts: []Part{{Text: text}}},
		Partial: partial,
	}
}
