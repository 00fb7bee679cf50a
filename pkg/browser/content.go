package browser

import (
	"strings"

	"golang.org/x/net/html"
)

// visibleText extracts the human-visible text of an HTML document:
// script, style, and other non-rendered subtrees are dropped and runs of
// whitespace collapse to single spaces.
func visibleText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		// html.Parse recovers from almost anything; an error here means
		// there is nothing worth rendering.
		return ""
	}

	var builder strings.Builder
	collectText(doc, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

// collectText walks the node tree accumulating text from rendered nodes.
func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.CommentNode {
		return
	}
	if n.Type == html.ElementNode && isHiddenElement(strings.ToLower(n.Data)) {
		return
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			builder.WriteString(text)
			builder.WriteString(" ")
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, builder)
	}
}

// isHiddenElement returns true for elements whose content is never
// rendered as page text.
func isHiddenElement(tagName string) bool {
	hidden := map[string]bool{
		"script":   true,
		"style":    true,
		"noscript": true,
		"head":     true,
		"iframe":   true,
		"object":   true,
		"embed":    true,
		"svg":      true,
		"template": true,
	}
	return hidden[tagName]
}

// truncateText caps s at maxLen characters, never splitting a rune.
func truncateText(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
