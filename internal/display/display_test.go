package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionHeader(t *testing.T) {
	header := SectionHeader("Repositories")

	assert.Contains(t, header, "Repositories")
	assert.Contains(t, header, "────────────", "underline matches the title width")
	assert.Equal(t, uint8('\n'), header[0], "section starts with a blank line")
}

func TestNewTableRendersHeadersAndRows(t *testing.T) {
	tbl := NewTable("Name", "Stars").
		Row("widget", "42").
		Row("gadget", "7")

	rendered := tbl.String()
	assert.Contains(t, rendered, "Name")
	assert.Contains(t, rendered, "Stars")
	assert.Contains(t, rendered, "widget")
	assert.Contains(t, rendered, "7")
}

func TestJSONIndentsOutput(t *testing.T) {
	var buf bytes.Buffer
	err := JSON(&buf, map[string]int{"count": 3})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 3\n}\n", buf.String())
}

func TestJSONEmptySliceStaysASlice(t *testing.T) {
	var buf bytes.Buffer
	err := JSON(&buf, []string{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONUnserializableValue(t *testing.T) {
	var buf bytes.Buffer
	err := JSON(&buf, make(chan int))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
