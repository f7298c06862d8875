package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-email-reply/identity"
	"github.com/zostay/go-email-reply/pattern"
)

func TestRuleSignature(t *testing.T) {
	t.Parallel()

	m := pattern.RuleSignature()
	for _, l := range []string{"--", "-- ", "   -- ", "---", "__", "________________________________", " ------------------------------"} {
		assert.True(t, m.MatchSignature([]string{l}, 0, nobody), "%q", l)
	}

	for _, l := range []string{"-", "_", "--okay", "__okay", "--1337", "__1337", "data -- __ foo", "-_-", "here __and__ now."} {
		assert.False(t, m.MatchSignature([]string{l}, 0, nobody), "%q", l)
	}
}

func TestSignOffSignature(t *testing.T) {
	t.Parallel()

	m := pattern.SignOffSignature()
	assert.True(t, m.MatchSignature([]string{"Hi", "", "-Abhishek Kona"}, 2, nobody))
	assert.True(t, m.MatchSignature([]string{"--okay", "", "-Sandro"}, 2, nobody))
	assert.True(t, m.MatchSignature([]string{"Thanks", "", "-A"}, 2, nobody))

	// must start a paragraph: the first line or after a blank line
	assert.True(t, m.MatchSignature([]string{"-Sandro"}, 0, nobody))
	assert.False(t, m.MatchSignature([]string{"Thanks", "-Sandro"}, 1, nobody))

	// bullets and doubled dashes are not sign-offs
	assert.False(t, m.MatchSignature([]string{"", "   - how about bullets"}, 1, nobody))
	assert.False(t, m.MatchSignature([]string{"", "--okay"}, 1, nobody))
	assert.False(t, m.MatchSignature([]string{"", "-this line goes on far too long to be a sign-off"}, 1, nobody))
}

func TestDeviceSignature(t *testing.T) {
	t.Parallel()

	m := pattern.DeviceSignature()
	for _, l := range []string{
		"Sent from my iPhone",
		"Sent from my BlackBerry",
		"Sent from my Verizon Wireless BlackBerry",
		"sent from my Samsung Galaxy smartphone.",
		"Sent from Windows Mail",
		"Sent from Mail for Windows 10",
		"Get Outlook for iOS",
	} {
		assert.True(t, m.MatchSignature([]string{l}, 0, nobody), l)
	}

	for _, l := range []string{
		"Sent from my desk, is much easier then my mobile phone.",
		"Sent from a magnificent torch of pixels",
		"I sent from my iPhone",
	} {
		assert.False(t, m.MatchSignature([]string{l}, 0, nobody), l)
	}
}

func TestSenderNameSignature(t *testing.T) {
	t.Parallel()

	m := pattern.SenderNameSignature()
	jim := identity.Parse("Jim Smith <john.smith@gmail.com>")

	assert.True(t, m.MatchSignature([]string{"Really it is.", "", "Jim Smith"}, 2, jim))
	assert.True(t, m.MatchSignature([]string{"Really it is.", "", "Jim B. Smith"}, 2, jim))
	assert.False(t, m.MatchSignature([]string{"Hi,", "", "My name is Jim Smith and I had a question."}, 2, jim))
	assert.False(t, m.MatchSignature([]string{"Jim Smith"}, 0, jim))
	assert.False(t, m.MatchSignature([]string{"Really it is.", "", "Jim Smith"}, 2, nobody))
}

func TestIsQuoteMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, pattern.IsQuoteMarker("> hello"))
	assert.True(t, pattern.IsQuoteMarker("  >> hello"))
	assert.True(t, pattern.IsQuoteMarker(">"))
	assert.False(t, pattern.IsQuoteMarker("a > b"))
	assert.False(t, pattern.IsQuoteMarker(""))
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, pattern.IsBlank(""))
	assert.True(t, pattern.IsBlank(" \t"))
	assert.False(t, pattern.IsBlank(" x "))
}
