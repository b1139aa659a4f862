package spam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_CleanMessagePasses(t *testing.T) {
	f := New()

	reason := f.Check(
		"I need a landing page for my business",
		"We already have a logo and brand colors.",
	)
	assert.Equal(t, ReasonNone, reason)
}

func TestCheck_DenylistedKeyword(t *testing.T) {
	f := New()

	assert.Equal(t, ReasonKeyword, f.Check("Buy cheap viagra today", ""))
	assert.Equal(t, ReasonKeyword, f.Check("I want a site about my CASINO empire", ""))
	assert.Equal(t, ReasonKeyword, f.Check("Send me free money please thanks", ""))
}

func TestCheck_KeywordInAdditionalInfo(t *testing.T) {
	f := New()

	reason := f.Check("I need a landing page for my business", "also interested in crypto opportunities")
	assert.Equal(t, ReasonKeyword, reason)
}

func TestCheck_TooManyURLs(t *testing.T) {
	f := New()

	reason := f.Check("Check out https://a.com https://b.com https://c.com", "")
	assert.Equal(t, ReasonTooManyURLs, reason)
}

func TestCheck_TwoURLsAllowed(t *testing.T) {
	f := New()

	reason := f.Check("My current site is https://old.example.com and my competitor is https://rival.example.com", "")
	assert.Equal(t, ReasonNone, reason)
}

func TestCheck_URLsCountedAcrossBothFields(t *testing.T) {
	f := New()

	reason := f.Check(
		"Current site https://a.example.com and shop https://b.example.com",
		"inspiration at http://c.example.com",
	)
	assert.Equal(t, ReasonTooManyURLs, reason)
}

func TestCheck_UppercaseDensity(t *testing.T) {
	f := New()

	assert.Equal(t, ReasonCapsDensity, f.Check("PLEASE BUILD MY WEBSITE RIGHT AWAY thanks", ""))
	assert.Equal(t, ReasonNone, f.Check("Please build my Website for my company ASAP", ""))
}

func TestCheck_RepeatedCharacters(t *testing.T) {
	f := New()

	assert.Equal(t, ReasonRepeatedRune, f.Check("I need a website soooooon", ""))
	assert.Equal(t, ReasonNone, f.Check("I need a website soooon", ""))
}

func TestCapsRatio(t *testing.T) {
	assert.Equal(t, 0.0, capsRatio(""))
	assert.Equal(t, 0.0, capsRatio("123 456"))
	assert.Equal(t, 1.0, capsRatio("ABC"))
	assert.InDelta(t, 0.5, capsRatio("AbCd"), 1e-9)
}

func TestHasRepeatedRun(t *testing.T) {
	assert.False(t, hasRepeatedRun("", 5))
	assert.False(t, hasRepeatedRun("aaaab", 5))
	assert.True(t, hasRepeatedRun("aaaaa", 5))
	assert.True(t, hasRepeatedRun("xף!!!!!y", 5))
}
