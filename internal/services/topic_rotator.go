package services

import "strings"

// NextTopicIndex returns the starting topic index for a batch so that
// topics cycle round-robin. The previous position is recovered by
// locating which topic's text appears in the most recent AI article's
// stored prompt. Substring matching is a best-effort approximation: it
// can mis-identify the position when one topic is a substring of
// another or when the topic list was edited after use, in which case
// rotation restarts at 0.
func NextTopicIndex(topics []string, lastPrompt string) int {
	if len(topics) == 0 || lastPrompt == "" {
		return 0
	}
	for i, topic := range topics {
		if topic != "" && strings.Contains(lastPrompt, topic) {
			return (i + 1) % len(topics)
		}
	}
	return 0
}

// TopicForArticle returns the topic used by article i of a batch
// starting at the given index.
func TopicForArticle(topics []string, start, i int) string {
	if len(topics) == 0 {
		return ""
	}
	return topics[(start+i)%len(topics)]
}

// KeywordForArticle returns the keyword associated with article i of a
// batch, or "" when no keyword list is configured.
func KeywordForArticle(keywords []string, start, i int) string {
	if len(keywords) == 0 {
		return ""
	}
	return keywords[(start+i)%len(keywords)]
}
