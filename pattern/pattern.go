// Package pattern holds the libraries of line patterns used to classify the
// lines of a reply: quote headers, which introduce quoted correspondence, and
// signature delimiters, which open a trailing signature or footer.
//
// Every matcher is a pure function of the normalized line texts of the body,
// the index of the line being classified, and the sender identity. Matchers
// may look ahead a bounded number of lines, but they keep no state between
// calls, so a Library may be shared freely between goroutines.
package pattern

import (
	"strings"

	"github.com/zostay/go-email-reply/identity"
)

// Lookahead limits, in lines, for the matchers that span several lines.
const (
	// MaxWroteLines is the most lines an "On <date>, <name> wrote:" header may
	// be wrapped across.
	MaxWroteLines = 3

	// MaxWrappedFieldLines is the most lines a single field value of a header
	// block may be wrapped across.
	MaxWrappedFieldLines = 2
)

// QuoteMarker is the citation marker that begins a quoted line.
const QuoteMarker = ">"

// HeaderMatcher detects a quote header starting at a line.
type HeaderMatcher interface {
	// MatchHeader returns the number of lines, starting with lines[i], that
	// make up the quote header, or 0 if lines[i] does not begin one.
	MatchHeader(lines []string, i int, sender identity.Identity) int
}

// SignatureMatcher detects a line that opens a signature.
type SignatureMatcher interface {
	// MatchSignature returns true if lines[i] opens a signature block.
	MatchSignature(lines []string, i int, sender identity.Identity) bool
}

// HeaderFunc adapts an ordinary function into a HeaderMatcher.
type HeaderFunc func(lines []string, i int, sender identity.Identity) int

// MatchHeader calls f.
func (f HeaderFunc) MatchHeader(lines []string, i int, sender identity.Identity) int {
	return f(lines, i, sender)
}

// SignatureFunc adapts an ordinary function into a SignatureMatcher.
type SignatureFunc func(lines []string, i int, sender identity.Identity) bool

// MatchSignature calls f.
func (f SignatureFunc) MatchSignature(lines []string, i int, sender identity.Identity) bool {
	return f(lines, i, sender)
}

// Library is an ordered set of matchers. Matchers are tried in order and the
// first match wins.
type Library struct {
	Headers    []HeaderMatcher
	Signatures []SignatureMatcher
}

// DefaultLibrary returns the standard library: the "wrote:" header of every
// locale, the separator headers, the field block headers of every locale in
// plain and emphasized form, the sender aware "wrote:" header, and all the
// signature matchers.
func DefaultLibrary() Library {
	hs := make([]HeaderMatcher, 0, 3*len(Locales)+2)
	for _, loc := range Locales {
		hs = append(hs, WroteHeader(loc))
	}

	hs = append(hs, SeparatorHeader())

	for _, loc := range Locales {
		hs = append(hs,
			FieldBlockHeader(loc, false),
			FieldBlockHeader(loc, true),
		)
	}

	hs = append(hs, SenderWroteHeader())

	return Library{
		Headers: hs,
		Signatures: []SignatureMatcher{
			RuleSignature(),
			SignOffSignature(),
			DeviceSignature(),
			SenderNameSignature(),
		},
	}
}

// MatchHeader tries each header matcher in order and returns the span of the
// first match, or 0 if none match.
func (l Library) MatchHeader(lines []string, i int, sender identity.Identity) int {
	for _, m := range l.Headers {
		if n := m.MatchHeader(lines, i, sender); n > 0 {
			return min(n, len(lines)-i)
		}
	}
	return 0
}

// MatchSignature returns true if any signature matcher matches.
func (l Library) MatchSignature(lines []string, i int, sender identity.Identity) bool {
	for _, m := range l.Signatures {
		if m.MatchSignature(lines, i, sender) {
			return true
		}
	}
	return false
}

// IsQuoteMarker returns true if the line begins, after leading whitespace,
// with the quote marker.
func IsQuoteMarker(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), QuoteMarker)
}

// IsBlank returns true if the line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
