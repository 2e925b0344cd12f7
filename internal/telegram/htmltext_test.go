package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTMLPassthrough(t *testing.T) {
	assert.Equal(t, "plain text, no markup", StripHTML("plain text, no markup"))
	assert.Equal(t, "a > b", StripHTML("a > b"))
}

func TestStripHTMLFlattensMarkup(t *testing.T) {
	got := StripHTML("<p>Demand is <b>rising</b>.</p><p>Rates follow.</p>")
	assert.Contains(t, got, "Demand is rising.")
	assert.Contains(t, got, "Rates follow.")
	assert.NotContains(t, got, "<")
}

func TestStripHTMLKeepsLineBreaks(t *testing.T) {
	got := StripHTML("first<br>second")
	assert.Equal(t, "first\nsecond", got)
}

func TestStripHTMLLists(t *testing.T) {
	got := StripHTML("<ul><li>one</li><li>two</li></ul>")
	assert.Contains(t, got, "one")
	assert.Contains(t, got, "two")
	assert.NotContains(t, got, "li>")
}
