package chat

import "regexp"

// RedactedPlaceholder replaces contact details in messages from users who
// have not yet closed a session on the platform.
const RedactedPlaceholder = "[Please complete your first session on-platform before sharing contact details]"

var contactPatterns = []*regexp.Regexp{
	// phone numbers, with optional separators
	regexp.MustCompile(`\b\d{3}[-.\s]?\d{3,4}[-.\s]?\d{4}\b`),
	// email addresses
	regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
	// messaging app handles
	regexp.MustCompile(`(?i)\b(?:wechat|weixin|whatsapp|telegram|signal|discord|qq|instagram|snapchat|line)\b\s*(?:id)?\s*[:：]?\s*[A-Za-z0-9._-]+`),
	// links
	regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`),
}

// Sanitize redacts contact info from a message. It returns the cleaned text
// and whether anything was redacted.
func Sanitize(text string) (string, bool) {
	redacted := false
	out := text
	for _, p := range contactPatterns {
		if p.MatchString(out) {
			out = p.ReplaceAllString(out, RedactedPlaceholder)
			redacted = true
		}
	}
	return out, redacted
}
