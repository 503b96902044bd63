package blog

import (
	"regexp"
	"strings"
)

const excerptMaxChars = 150

var (
	markupTagRegex  = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// plainText strips markup tags from rich-text content and collapses
// whitespace runs into single spaces
func plainText(content string) string {
	text := markupTagRegex.ReplaceAllString(content, "")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// GenerateExcerpt derives a short plain-text summary from post content,
// capped at 150 characters with a trailing ellipsis when truncated
func GenerateExcerpt(content string) string {
	text := plainText(content)
	runes := []rune(text)
	if len(runes) <= excerptMaxChars {
		return text
	}
	return strings.TrimSpace(string(runes[:excerptMaxChars])) + "..."
}
