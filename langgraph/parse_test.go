package langgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazelment/agentview/streamtext"
)

func TestClassify_Boundary(t *testing.T) {
	ev, err := Classify([]byte(`{"type":"AIMessageChunk","content":[]}`))
	require.NoError(t, err)
	assert.Equal(t, streamtext.KindMessageStart, ev.Kind)
}

func TestClassify_SingleTextBlock(t *testing.T) {
	ev, err := Classify([]byte(`{"type":"AIMessageChunk","content":[{"type":"text","text":"Hello","index":0}]}`))
	require.NoError(t, err)
	assert.Equal(t, streamtext.KindTextDelta, ev.Kind)
	assert.Equal(t, "Hello", ev.Text)
}

func TestClassify_ConcatenatesBlocksInOrder(t *testing.T) {
	ev, err := Classify([]byte(`{"type":"AIMessageChunk","content":[{"type":"text","text":"Hi","index":0},{"type":"text","text":" there","index":1}]}`))
	require.NoError(t, err)
	assert.Equal(t, streamtext.KindTextDelta, ev.Kind)
	assert.Equal(t, "Hi there", ev.Text)
}

func TestClassify_SkipsNonTextBlocks(t *testing.T) {
	ev, err := Classify([]byte(`{"type":"AIMessageChunk","content":[{"type":"tool_use","id":"call-1","name":"search"},{"type":"text","text":"found it","index":1}]}`))
	require.NoError(t, err)
	assert.Equal(t, streamtext.KindTextDelta, ev.Kind)
	assert.Equal(t, "found it", ev.Text)
}

func TestClassify_OnlyNonTextBlocks(t *testing.T) {
	ev, err := Classify([]byte(`{"type":"AIMessageChunk","content":[{"type":"tool_use","id":"call-1"}]}`))
	require.NoError(t, err)
	assert.Equal(t, streamtext.KindUnknown, ev.Kind)
}

func TestClassify_WrongType(t *testing.T) {
	ev, err := Classify([]byte(`{"type":"ToolMessage","content":[{"type":"text","text":"ignored"}]}`))
	require.NoError(t, err)
	assert.Equal(t, streamtext.KindUnknown, ev.Kind)
}

func TestClassify_ContentNotAnArray(t *testing.T) {
	for _, line := range []string{
		`{"type":"AIMessageChunk","content":"plain string"}`,
		`{"type":"AIMessageChunk","content":{"type":"text"}}`,
		`{"type":"AIMessageChunk","content":null}`,
		`{"type":"AIMessageChunk"}`,
	} {
		ev, err := Classify([]byte(line))
		require.NoError(t, err, "payload %s", line)
		assert.Equal(t, streamtext.KindUnknown, ev.Kind, "payload %s", line)
	}
}

func TestClassify_MalformedJSON(t *testing.T) {
	_, err := Classify([]byte(`{"type":"AIMessageChunk","content":[`))
	require.Error(t, err)
}

func TestParseChunk_BoundaryMatchesConverseRule(t *testing.T) {
	p := NewParser()
	line := `data: {"type":"AIMessageChunk","content":[]}`

	updates := 0
	got := p.ParseChunk(line, "", func(string) { updates++ })
	assert.Equal(t, "", got)
	assert.Zero(t, updates)

	got = p.ParseChunk(line, "Hello world", func(string) { updates++ })
	assert.Equal(t, "Hello world\n\n", got)
	assert.Equal(t, 1, updates)
}

func TestParseChunk_MixedStream(t *testing.T) {
	p := NewParser()

	var updates []string
	record := func(c string) { updates = append(updates, c) }

	completion := ""
	for _, line := range []string{
		`data: {"type":"AIMessageChunk","content":[]}`,
		`data: {"type":"AIMessageChunk","content":[{"type":"text","text":"Hi","index":0}]}`,
		`event: message`,
		`data: {"type":"AIMessageChunk","content":[{"type":"tool_use","id":"call-1"}]}`,
		`data: {"type":"AIMessageChunk","content":[{"type":"text","text":" there","index":0}]}`,
	} {
		completion = p.ParseChunk(line, completion, record)
	}

	require.Equal(t, "Hi there", completion)
	require.Equal(t, []string{"Hi", "Hi there"}, updates)
}
