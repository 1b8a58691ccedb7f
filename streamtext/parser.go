package streamtext

import "log/slog"

// messageSeparator is inserted between consecutive assistant messages so
// multi-message turns read as separate paragraphs.
const messageSeparator = "\n\n"

// UpdateFunc receives the full accumulated completion each time it changes.
// It runs synchronously inside ParseChunk, on the caller's goroutine.
type UpdateFunc func(completion string)

// Classifier decodes one JSON payload into a normalized Event.
// A returned error means the payload was not valid JSON for the backend's
// wire format; a KindUnknown event means it decoded but matched no
// recognized shape. Both leave the completion untouched.
type Classifier func(payload []byte) (Event, error)

// Parser applies the shared SSE line policy and buffer fold around one
// backend's Classifier. Parsers are stateless and safe for concurrent use
// across independent sessions; all per-turn state is the completion string
// threaded through ParseChunk by the caller.
type Parser struct {
	classify Classifier
	logger   *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug-level drop diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser wraps a backend classifier in the shared parsing contract.
func NewParser(classify Classifier, opts ...Option) *Parser {
	p := &Parser{
		classify: classify,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseChunk folds one stream line into the completion and returns the new
// completion. Lines without a "data: " payload, payloads that fail to decode,
// and recognized-but-irrelevant events all return completion unchanged.
// onUpdate is invoked at most once, and only when the result differs from
// completion. onUpdate may be nil.
func (p *Parser) ParseChunk(line, completion string, onUpdate UpdateFunc) string {
	payload, ok := ExtractData(line)
	if !ok {
		return completion
	}

	ev, err := p.classify([]byte(payload))
	if err != nil {
		// Never fatal: evolving backends may interleave payloads this
		// adapter does not understand.
		p.logger.Debug("dropping undecodable stream payload", "error", err)
		return completion
	}

	return Apply(ev, completion, onUpdate)
}

// Apply folds one normalized event into the completion. The completion only
// ever grows: a message boundary appends the separator when content already
// exists, a text delta appends its text verbatim. onUpdate fires once on
// mutation with the full new completion.
func Apply(ev Event, completion string, onUpdate UpdateFunc) string {
	switch ev.Kind {
	case KindMessageStart:
		// No leading separator before the first message's content.
		if completion == "" {
			return completion
		}
		completion += messageSeparator
	case KindTextDelta:
		if ev.Text == "" {
			return completion
		}
		completion += ev.Text
	default:
		return completion
	}

	if onUpdate != nil {
		onUpdate(completion)
	}
	return completion
}
