// Package langgraph adapts the LangGraph-style backend wire format — flat
// message-chunk JSON payloads — to the streamtext parsing contract.
package langgraph

import "encoding/json"

// chunkType is the only message type this adapter recognizes.
const chunkType = "AIMessageChunk"

// Message is one streamed message payload from a LangGraph backend.
// Content stays raw until the type is known: an empty array marks a message
// boundary, a non-empty array carries content blocks, and anything that is
// not an array is ignored.
// Example: {"type":"AIMessageChunk","content":[]}
// Example: {"type":"AIMessageChunk","content":[{"type":"text","text":"Hello","index":0}]}
type Message struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

// ContentBlock is one element of a message's content array. Non-text blocks
// (tool_use and friends) carry a different Type and are skipped.
type ContentBlock struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Index int    `json:"index"`
}
