package telegram

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage splits text into chunks of at most maxLen runes,
// preferring newline boundaries in the back half of a chunk.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(text) > 0 {
		runes := []rune(text)
		if len(runes) <= maxLen {
			parts = append(parts, text)
			break
		}

		// Scan in rune space: a byte index from strings.LastIndex
		// would be wrong for multibyte text.
		splitAt := maxLen
		for i := maxLen - 1; i > maxLen/2; i-- {
			if runes[i] == '\n' {
				splitAt = i + 1
				break
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		text = string(runes[splitAt:])
	}
	return parts
}

// FixMarkdown closes dangling code fences and inline code spans so
// Telegram's markdown parser doesn't reject the message.
func FixMarkdown(text string) string {
	if strings.Count(text, "```")%2 != 0 {
		text += "\n```"
	}
	return closeInlineCode(text)
}

func closeInlineCode(text string) string {
	var sb strings.Builder
	inBlock := false
	inlineOpen := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && string(runes[i:i+3]) == "```" {
			if inlineOpen {
				sb.WriteRune('`')
				inlineOpen = false
			}
			inBlock = !inBlock
			sb.WriteString("```")
			i += 2
			continue
		}
		if !inBlock && runes[i] == '`' {
			inlineOpen = !inlineOpen
		}
		sb.WriteRune(runes[i])
	}

	if inlineOpen {
		sb.WriteRune('`')
	}
	return sb.String()
}
