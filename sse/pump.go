// Package sse feeds SSE-style line streams through a stream parser.
//
// The pump owns no transport: it reads whatever io.Reader the caller hands
// it (an HTTP response body, a captured session file, a pipe) and performs no
// retries or reconnects. Cancellation is the caller's context.
package sse

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/bazelment/agentview/streamtext"
)

// maxLineBytes bounds a single stream line. Delta payloads are small; this
// only guards against a corrupt stream with no newlines.
const maxLineBytes = 1024 * 1024

// Pump drives a stream parser over a line-oriented reader, threading the
// accumulated completion between calls.
type Pump struct {
	parser   *streamtext.Parser
	onUpdate streamtext.UpdateFunc
}

// NewPump creates a pump that reports every completion change to onUpdate.
// onUpdate may be nil when only the final completion matters.
func NewPump(parser *streamtext.Parser, onUpdate streamtext.UpdateFunc) *Pump {
	return &Pump{parser: parser, onUpdate: onUpdate}
}

// Run consumes r line by line until EOF or context cancellation and returns
// the final accumulated completion. On cancellation or a read error the
// completion accumulated so far is returned alongside the error.
func (p *Pump) Run(ctx context.Context, r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	completion := ""
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return completion, ctx.Err()
		default:
		}
		completion = p.parser.ParseChunk(scanner.Text(), completion, p.onUpdate)
	}
	if err := scanner.Err(); err != nil {
		return completion, fmt.Errorf("stream read: %w", err)
	}
	return completion, nil
}
