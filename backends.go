// Package agentview selects and configures stream parsers for the agent
// backends it knows about. The parsing contract lives in streamtext; the
// per-format adapters live in converse and langgraph. Adding a backend means
// adding an adapter package and one entry here — callers keep selecting by
// tag.
package agentview

import (
	"fmt"

	"github.com/bazelment/agentview/converse"
	"github.com/bazelment/agentview/langgraph"
	"github.com/bazelment/agentview/streamtext"
)

// Backend tags a backend wire format. Tags appear in config files and on the
// command line; they are not auto-detected from the stream.
type Backend string

const (
	// BackendConverse is the nested event.* format.
	BackendConverse Backend = "converse"
	// BackendLangGraph is the flat AIMessageChunk format.
	BackendLangGraph Backend = "langgraph"
)

// Backends returns the known backend tags in display order.
func Backends() []Backend {
	return []Backend{BackendConverse, BackendLangGraph}
}

// ParserFor returns a stream parser for the given backend tag.
func ParserFor(backend Backend, opts ...streamtext.Option) (*streamtext.Parser, error) {
	switch backend {
	case BackendConverse:
		return converse.NewParser(opts...), nil
	case BackendLangGraph:
		return langgraph.NewParser(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
