package agent

import (
	"regexp"
	"strings"
)

// Generation models sometimes echo prompt scaffolding back in the answer.
// These patterns strip the known labels; order matters, the longer labels go
// before the bare "question:" / "answer:" ones.
var cleanupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)customer question:.*`),
	regexp.MustCompile(`(?i)assistant answer:.*`),
	regexp.MustCompile(`(?i)store information:.*`),
	regexp.MustCompile(`(?i)question:\s*`),
	regexp.MustCompile(`(?i)answer:\s*`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanAnswer removes echoed prompt labels from generated text and normalizes
// whitespace so the reply reads like a natural support message. This is a
// defensive text filter, not semantic understanding.
func CleanAnswer(text string) string {
	if text == "" {
		return ""
	}
	cleaned := text
	for _, pattern := range cleanupPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
}
