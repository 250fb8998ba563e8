package llm

import "strings"

// StripCodeFence removes a surrounding ``` fence, with or without a language
// tag, that models sometimes wrap around plain markdown answers.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}

	body := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if idx := strings.Index(body, "\n"); idx >= 0 {
		tag := strings.TrimSpace(body[:idx])
		if !strings.ContainsAny(tag, " #") {
			body = body[idx+1:]
		}
	}
	return strings.TrimSpace(body)
}
