package reply

import (
	"github.com/zostay/go-email-reply/identity"
	"github.com/zostay/go-email-reply/pattern"
)

// reader holds the settings for a single call to Read.
type reader struct {
	library pattern.Library
	sender  identity.Identity
}

func newReader(opts []ReadOption) *reader {
	r := &reader{
		library: pattern.DefaultLibrary(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ReadOption refers to options that may be passed to Read or ParseReply to
// modify how the reply is parsed.
type ReadOption func(r *reader)

// WithSender is a ReadOption that names the author of the message being parsed.
// The sender may be given as "Name <address>", "Last, First <address>", with a
// quoted name, or as a bare address. Anything that cannot be parsed is simply
// ignored.
//
// With a sender, a line holding nothing but the sender's name opens a
// signature and a "wrote:" line that names the sender is a quote header. Prose
// that merely mentions the sender's name or address is never affected.
func WithSender(sender string) ReadOption {
	return func(r *reader) { r.sender = identity.Parse(sender) }
}

// WithLibrary is a ReadOption that replaces the default pattern.Library
// entirely.
func WithLibrary(lib pattern.Library) ReadOption {
	return func(r *reader) { r.library = lib }
}

// WithHeaderMatchers is a ReadOption that adds quote header matchers after the
// ones already in the library. Use it to support another locale:
//
//	reply.Read(body, reply.WithHeaderMatchers(
//		pattern.WroteHeader(dutch),
//		pattern.FieldBlockHeader(dutch, false),
//	))
func WithHeaderMatchers(ms ...pattern.HeaderMatcher) ReadOption {
	return func(r *reader) {
		hs := make([]pattern.HeaderMatcher, 0, len(r.library.Headers)+len(ms))
		hs = append(hs, r.library.Headers...)
		r.library.Headers = append(hs, ms...)
	}
}

// WithSignatureMatchers is a ReadOption that adds signature matchers after the
// ones already in the library.
func WithSignatureMatchers(ms ...pattern.SignatureMatcher) ReadOption {
	return func(r *reader) {
		ss := make([]pattern.SignatureMatcher, 0, len(r.library.Signatures)+len(ms))
		ss = append(ss, r.library.Signatures...)
		r.library.Signatures = append(ss, ms...)
	}
}
