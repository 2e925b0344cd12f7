package telegram

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var multiNewline = regexp.MustCompile(`\n{3,}`)

// StripHTML flattens HTML fragments the backend occasionally embeds in
// replies into plain text, keeping line breaks for block elements.
// Text without markup passes through untouched.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, li, tr, h1, h2, h3, h4, ul, ol, table").Each(func(_ int, sel *goquery.Selection) {
		sel.AfterHtml("\n")
	})

	text := doc.Text()
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
