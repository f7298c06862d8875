package reply_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reply "github.com/zostay/go-email-reply"
	"github.com/zostay/go-email-reply/identity"
	"github.com/zostay/go-email-reply/pattern"
)

func TestWithLibrary_Empty(t *testing.T) {
	t.Parallel()

	body := "Hello\n\n--\nRick Olson\n\nOn Fri, Feb 24, 2012 at 10:19 AM, Bob <bob@example.com> wrote:\nHi\n> quoted"

	// without patterns, only the quote marker is recognized
	e := reply.Read(body, reply.WithLibrary(pattern.Library{}))
	fs := e.Fragments()
	require.Len(t, fs, 2)
	assert.False(t, fs[0].IsHidden())
	assert.True(t, fs[1].IsQuoted())
	assert.Equal(t, "> quoted", fs[1].String())
}

func TestWithSignatureMatchers(t *testing.T) {
	t.Parallel()

	body := "See you there.\n\nCheers,\nBob"

	assert.Equal(t, "See you there.\n\nCheers,\nBob", reply.ParseReply(body))

	cheers := pattern.SignatureFunc(func(lines []string, i int, _ identity.Identity) bool {
		return strings.TrimSpace(lines[i]) == "Cheers,"
	})

	assert.Equal(t, "See you there.", reply.ParseReply(body, reply.WithSignatureMatchers(cheers)))
}

func TestWithHeaderMatchers_DoesNotAffectDefaults(t *testing.T) {
	t.Parallel()

	never := pattern.HeaderFunc(func([]string, int, identity.Identity) int { return 0 })

	body := "Foo\n\n-----Original Message-----\nBar"
	assert.Equal(t, "Foo", reply.ParseReply(body, reply.WithHeaderMatchers(never)))
	assert.Len(t, pattern.DefaultLibrary().Headers, 3*len(pattern.Locales)+2)
}

func TestWithSender_Unparseable(t *testing.T) {
	t.Parallel()

	body := "Hello\n\nRick Olson"
	assert.Equal(t, body, reply.ParseReply(body, reply.WithSender("")))
	assert.Equal(t, body, reply.ParseReply(body, reply.WithSender("   ")))
}

func TestWithSender_NeverHidesProse(t *testing.T) {
	t.Parallel()

	body := "Rick Olson here, writing about the Rick Olson account.\n\nThanks"
	assert.Equal(t, body, reply.ParseReply(body, reply.WithSender("Rick Olson <rick.olson@example.com>")))
}
