package streamtext

import "strings"

// dataPrefix marks an SSE payload line. Only lines beginning with the exact
// 6-character prefix are significant; comments, event-type headers, and blank
// keepalive lines are dropped.
const dataPrefix = "data: "

// ExtractData returns the trimmed JSON payload of one SSE data line.
// It reports ok=false for empty or whitespace-only lines, lines that don't
// begin with "data: ", and lines whose payload is empty after trimming.
func ExtractData(line string) (payload string, ok bool) {
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	if !strings.HasPrefix(line, dataPrefix) {
		return "", false
	}
	payload = strings.TrimSpace(line[len(dataPrefix):])
	if payload == "" {
		return "", false
	}
	return payload, true
}
