package converse

import (
	"encoding/json"

	"github.com/bazelment/agentview/streamtext"
)

// assistantRole is the only messageStart role that marks a boundary.
const assistantRole = "assistant"

// Classify decodes one Converse payload into a normalized event.
// Valid JSON that matches neither recognized shape — a messageStart with a
// different role, an empty delta text, any other event kind — classifies as
// unknown.
func Classify(payload []byte) (streamtext.Event, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return streamtext.Event{}, err
	}

	switch {
	case env.Event.MessageStart != nil && env.Event.MessageStart.Role == assistantRole:
		return streamtext.Event{Kind: streamtext.KindMessageStart}, nil
	case env.Event.ContentBlockDelta != nil && env.Event.ContentBlockDelta.Delta.Text != "":
		return streamtext.Event{
			Kind: streamtext.KindTextDelta,
			Text: env.Event.ContentBlockDelta.Delta.Text,
		}, nil
	default:
		return streamtext.Event{}, nil
	}
}

// NewParser returns a stream parser for the Converse wire format.
func NewParser(opts ...streamtext.Option) *streamtext.Parser {
	return streamtext.NewParser(Classify, opts...)
}
