package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRedactsPhoneNumbers(t *testing.T) {
	out, redacted := Sanitize("call me at 555-123-4567 tonight")
	assert.True(t, redacted)
	assert.NotContains(t, out, "555-123-4567")
	assert.Contains(t, out, RedactedPlaceholder)
}

func TestSanitizeRedactsEmail(t *testing.T) {
	out, redacted := Sanitize("my email is alice@example.com")
	assert.True(t, redacted)
	assert.NotContains(t, out, "alice@example.com")
}

func TestSanitizeRedactsMessagingHandles(t *testing.T) {
	cases := []string{
		"add me on wechat: alice_123",
		"WhatsApp id alice99",
		"Telegram: @tutor_bob is mine",
	}
	for _, in := range cases {
		out, redacted := Sanitize(in)
		assert.True(t, redacted, "expected redaction for %q", in)
		assert.Contains(t, out, RedactedPlaceholder)
	}
}

func TestSanitizeRedactsLinks(t *testing.T) {
	out, redacted := Sanitize("book me via https://calendly.com/alice")
	assert.True(t, redacted)
	assert.NotContains(t, out, "calendly.com")
}

func TestSanitizeLeavesNormalTextAlone(t *testing.T) {
	in := "see you at the library at 3pm, bring chapter 4 notes"
	out, redacted := Sanitize(in)
	assert.False(t, redacted)
	assert.Equal(t, in, out)
}
