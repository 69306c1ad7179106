// Package assistant orchestrates one conversation turn: intent routing,
// one-shot parsing, the slot-filling dialog, draft confirmation and the
// handoff to the external creation services.
package assistant

import "github.com/FACorreiaa/finchat/internal/model"

// ResponseKind tags the payload variant returned for a turn. This is the
// in-process contract with the conversation surface, not a wire format.
type ResponseKind string

const (
	// KindReply is a plain text reply, optionally with suggestion chips.
	KindReply ResponseKind = "reply"
	// KindReprompt asks the user to retry the current step; the dialog
	// state did not advance.
	KindReprompt ResponseKind = "reprompt"
	// KindDraft carries a draft pending user confirmation. Exactly one of
	// Transaction, Category or Template is set.
	KindDraft ResponseKind = "draft"
)

// Response is the assistant's answer to a single utterance.
type Response struct {
	Kind        ResponseKind            `json:"kind"`
	Text        string                  `json:"text,omitempty"`
	Chips       []string                `json:"chips,omitempty"`
	Transaction *model.DraftTransaction `json:"transaction,omitempty"`
	Category    *model.DraftCategory    `json:"category,omitempty"`
	Template    *Template               `json:"template,omitempty"`
}
