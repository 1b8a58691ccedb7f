package langgraph

import (
	"encoding/json"
	"strings"

	"github.com/bazelment/agentview/streamtext"
)

// Classify decodes one LangGraph payload into a normalized event.
// An AIMessageChunk with an empty content array is a message boundary; a
// non-empty array concatenates its text blocks, in order, with nothing
// inserted between them. Other message types, a content field that is not an
// array, and chunks whose blocks yield no text all classify as unknown.
func Classify(payload []byte) (streamtext.Event, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return streamtext.Event{}, err
	}
	if msg.Type != chunkType {
		return streamtext.Event{}, nil
	}

	var blocks []json.RawMessage
	if err := json.Unmarshal(msg.Content, &blocks); err != nil {
		return streamtext.Event{}, nil
	}
	// A JSON null decodes without error but leaves the slice nil; only a
	// genuine empty array marks a boundary.
	if blocks == nil {
		return streamtext.Event{}, nil
	}
	if len(blocks) == 0 {
		return streamtext.Event{Kind: streamtext.KindMessageStart}, nil
	}

	var text strings.Builder
	for _, raw := range blocks {
		var block ContentBlock
		if err := json.Unmarshal(raw, &block); err != nil {
			continue
		}
		if block.Type != "text" {
			continue
		}
		text.WriteString(block.Text)
	}
	if text.Len() == 0 {
		return streamtext.Event{}, nil
	}
	return streamtext.Event{Kind: streamtext.KindTextDelta, Text: text.String()}, nil
}

// NewParser returns a stream parser for the LangGraph wire format.
func NewParser(opts ...streamtext.Option) *streamtext.Parser {
	return streamtext.NewParser(Classify, opts...)
}
