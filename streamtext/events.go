package streamtext

// EventKind identifies the normalized event category shared by all backends.
type EventKind int

const (
	// KindUnknown is the zero value. Payloads that decode but don't match a
	// recognized shape (tool calls, metadata, usage stats) classify as
	// KindUnknown and leave the completion untouched.
	KindUnknown EventKind = iota

	// KindMessageStart signals that a new assistant message is starting.
	KindMessageStart

	// KindTextDelta carries an incremental fragment of assistant text.
	KindTextDelta
)

// Event is a normalized streaming event decoded from one payload line.
type Event struct {
	Kind EventKind
	Text string // delta text, set only for KindTextDelta
}
