package event

import "iter"

type Kind string

const (
	KindText        Kind = "text"
	KindToolCall    Kind = "tool_call"
	KindToolResult  Kind = "tool_result"
	KindGrounding   Kind = "grounding"
	KindBranch      Kind = "branch"
	KindFinish      Kind = "finish"
	KindFinal       Kind = "final"
	KindInterrupted Kind = "interrupted"
	KindError       Kind = "error"
	KindCustom      Kind = "custom"
)

// Normalized is the classified, stable representation of an Event. Kind
// selects the variant; only the fields belonging to that variant are set.
type Normalized struct {
	Kind Kind `json:"type"`

	// KindText, KindBranch
	Value string `json:"value,omitempty"`

	// KindToolCall
	Name      string         `json:"name,omitempty"`
	Arguments map[string]any `json:"arguments,omitempty"`

	// KindToolResult
	ID       string         `json:"id,omitempty"`
	Response map[string]any `json:"response,omitempty"`

	// KindGrounding, KindCustom
	Metadata map[string]any `json:"metadata,omitempty"`

	// KindFinish
	Reason string `json:"reason,omitempty"`

	// KindError
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Classify projects one Event into zero or more Normalized events. The
// returned sequence is lazy and finite; classification is read-only, so
// classifying the same Event twice yields identical sequences.
//
// One Event can produce several variants (text plus a finish signal, for
// example). Each yielded variant stands on its own; consumers must not
// assume a single variant per Event. Absent fields skip their rule.
func Classify(ev Event) iter.Seq[Normalized] {
	return func(yield func(Normalized) bool) {
		if ev.Content != nil {
			for _, part := range ev.Content.Parts {
				if part.Text == "" {
					continue
				}
				if !yield(Normalized{Kind: KindText, Value: part.Text}) {
					return
				}
			}
		}

		// Tool calls and tool results are scanned in two independent passes
		// over the actions, so an action carrying both yields both, calls
		// before results.
		for _, action := range ev.Actions {
			if action.FunctionCall == nil {
				continue
			}
			if !yield(Normalized{
				Kind:      KindToolCall,
				Name:      action.FunctionCall.Name,
				Arguments: action.FunctionCall.Args,
			}) {
				return
			}
		}
		for _, action := range ev.Actions {
			if action.FunctionResponse == nil {
				continue
			}
			if !yield(Normalized{
				Kind:     KindToolResult,
				ID:       action.FunctionResponse.ID,
				Response: action.FunctionResponse.Response,
			}) {
				return
			}
		}

		if len(ev.GroundingMetadata) > 0 {
			if !yield(Normalized{Kind: KindGrounding, Metadata: ev.GroundingMetadata}) {
				return
			}
		}

		if ev.Branch != "" {
			if !yield(Normalized{Kind: KindBranch, Value: ev.Branch}) {
				return
			}
		}

		if ev.FinishReason != "" {
			if !yield(Normalized{Kind: KindFinish, Reason: ev.FinishReason}) {
				return
			}
		}

		if ev.IsFinalResponse {
			if !yield(Normalized{Kind: KindFinal}) {
				return
			}
		}

		if ev.Interrupted {
			if !yield(Normalized{Kind: KindInterrupted}) {
				return
			}
		}

		if ev.ErrorCode != "" {
			if !yield(Normalized{
				Kind:         KindError,
				ErrorCode:    ev.ErrorCode,
				ErrorMessage: ev.ErrorMessage,
			}) {
				return
			}
		}

		if len(ev.CustomMetadata) > 0 {
			if !yield(Normalized{Kind: KindCustom, Metadata: ev.CustomMetadata}) {
				return
			}
		}
	}
}
