// Package streamtext defines the common parsing contract shared by all
// backend stream adapters (converse, langgraph).
//
// # Background
//
// Each agent-execution backend streams its response as SSE-style lines: a
// payload line starts with "data: " and carries one JSON event. The event
// shapes differ per backend — Converse nests everything under an "event"
// object, LangGraph emits flat AIMessageChunk messages — but every frontend
// consumer wants the same thing: the accumulated plain text of the current
// assistant turn, updated as deltas arrive.
//
// Without a shared contract, each backend needs its own parse function that
// duplicates the line policy (prefix check, trim, JSON decode, drop-on-error)
// and the fold step (boundary separator, delta append, update callback).
// The only genuinely per-backend work is classifying one decoded payload;
// everything around it would be copy-pasted.
//
// # Design
//
// This package owns everything except classification. A backend package
// contributes a single Classifier that maps one JSON payload to a normalized
// Event (boundary, text delta, or unknown); Parser wraps it with the shared
// line policy and buffer fold.
//
// Key properties, relied on by callers:
//
//   - ParseChunk never returns an error and never panics. Malformed transport
//     lines and unrecognized event shapes are silently dropped; JSON decode
//     failures are logged at debug level and dropped. The only observable
//     effect of any failure is "no buffer mutation, no callback".
//
//   - The update callback fires at most once per call, and only when the
//     returned completion differs from the one passed in. It always receives
//     the full accumulated text, never a delta, so the latest callback
//     argument is always ground truth.
//
//   - Parser holds no per-turn state. The completion is threaded through
//     every call by the caller, so independent sessions can share one Parser
//     concurrently without locking.
package streamtext
