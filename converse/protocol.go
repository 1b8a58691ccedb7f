// Package converse adapts the Converse-style backend wire format — nested
// event.* JSON payloads — to the streamtext parsing contract.
package converse

// Envelope is the outer wrapper of every Converse stream payload. Exactly one
// of the inner event fields is set per payload; payloads carrying other event
// kinds (contentBlockStop, metadata, tool use) leave both nil.
// Example: {"event":{"messageStart":{"role":"assistant"}}}
// Example: {"event":{"contentBlockDelta":{"delta":{"text":"Hello"},"contentBlockIndex":0}}}
type Envelope struct {
	Event InnerEvent `json:"event"`
}

// InnerEvent holds the event variants this adapter recognizes.
type InnerEvent struct {
	MessageStart      *MessageStart      `json:"messageStart"`
	ContentBlockDelta *ContentBlockDelta `json:"contentBlockDelta"`
}

// MessageStart marks the beginning of a new message. Only role "assistant"
// is treated as a boundary.
type MessageStart struct {
	Role string `json:"role"`
}

// ContentBlockDelta carries one incremental content fragment.
type ContentBlockDelta struct {
	Delta             Delta `json:"delta"`
	ContentBlockIndex int   `json:"contentBlockIndex"`
}

// Delta is the inner delta object. Non-text deltas (tool input JSON) leave
// Text empty and are ignored.
type Delta struct {
	Text string `json:"text"`
}
