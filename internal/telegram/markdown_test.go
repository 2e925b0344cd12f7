package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShort(t *testing.T) {
	parts := SplitMessage("hello", 4096)
	require.Len(t, parts, 1)
	assert.Equal(t, "hello", parts[0])
}

func TestSplitMessageLong(t *testing.T) {
	text := strings.Repeat("line of text\n", 600)
	parts := SplitMessage(text, 4096)
	require.Greater(t, len(parts), 1)

	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 4096)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("a", 3000) + "\n" + strings.Repeat("b", 3000)
	parts := SplitMessage(text, 4096)
	require.Len(t, parts, 2)
	assert.True(t, strings.HasSuffix(parts[0], "\n"))
}

func TestSplitMessageMultibyte(t *testing.T) {
	// Newline sits past the byte budget but inside the rune budget;
	// a byte-indexed split would panic or overshoot here.
	text := strings.Repeat("€", 9) + "\n" + "ab"
	parts := SplitMessage(text, 10)
	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("€", 9)+"\n", parts[0])
	assert.Equal(t, "ab", parts[1])
}

func TestSplitMessageMultibyteCapped(t *testing.T) {
	text := strings.Repeat("📈 demand is rising\n", 500)
	parts := SplitMessage(text, 4096)
	require.Greater(t, len(parts), 1)

	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 4096)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestFixMarkdownClosesFence(t *testing.T) {
	fixed := FixMarkdown("```sql\nSELECT 1")
	assert.Equal(t, 2, strings.Count(fixed, "```"))
}

func TestFixMarkdownClosesInlineCode(t *testing.T) {
	fixed := FixMarkdown("use `SELECT")
	assert.Equal(t, 0, strings.Count(fixed, "`")%2)
}

func TestFixMarkdownBalancedUntouched(t *testing.T) {
	text := "nothing `to` fix ```here```"
	assert.Equal(t, text, FixMarkdown(text))
}
