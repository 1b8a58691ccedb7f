package agentview

import "errors"

// ErrUnknownBackend is returned when a backend tag has no registered adapter.
var ErrUnknownBackend = errors.New("unknown backend")
