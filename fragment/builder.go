package fragment

import (
	"github.com/zostay/go-email-reply/identity"
	"github.com/zostay/go-email-reply/lines"
	"github.com/zostay/go-email-reply/pattern"
)

// mode tells the scan what kind of block the previous line belonged to.
type mode int

const (
	modeContent   mode = iota // newly written content
	modeHeader                // a quote header and what follows it, before any quote marker
	modeQuote                 // lines starting with the quote marker
	modeSignature             // everything after a signature delimiter
)

// state is threaded from one line to the next during the scan. Each step
// returns a new state rather than modifying the old one.
type state struct {
	mode mode

	// span is the number of lines left in the quote header being consumed
	span int
}

// class is the classification of a single line.
type class struct {
	quoted    bool
	signature bool

	// opens is true when the line begins a new fragment even if the previous
	// line has the same classification, e.g. a second signature delimiter
	// starting a mailing list footer after a personal signature.
	opens bool
}

// Builder splits the lines of a reply into fragments. The zero Builder has no
// patterns and treats everything that is not marked with the quote marker as
// content, so most callers want NewBuilder.
//
// A Builder holds no state between calls to Build and may be used from many
// goroutines at once.
type Builder struct {
	// Library holds the quote header and signature patterns.
	Library pattern.Library

	// Sender is the author of the reply, used to recognize headers and
	// sign-offs that name the author. It may be the zero Identity.
	Sender identity.Identity
}

// NewBuilder returns a Builder using pattern.DefaultLibrary and the given
// sender.
func NewBuilder(sender identity.Identity) Builder {
	return Builder{
		Library: pattern.DefaultLibrary(),
		Sender:  sender,
	}
}

// Build classifies the lines in a single pass from top to bottom and groups
// them into fragments. Every line belongs to exactly one fragment and the
// fragments keep the order of the lines. No lines means no fragments.
//
// For each line, the first of these rules to apply decides its class:
//
//  1. A line inside a quote header span is quoted.
//  2. A line starting a quote header is quoted and starts a new span.
//  3. A blank line continues a header or signature block; after quoted
//     lines it is content.
//  4. After a signature delimiter, everything is signature. A further
//     delimiter starts a new signature fragment.
//  5. After a quote header, everything is quoted, until lines with the
//     quote marker show where the quotation is.
//  6. A signature delimiter starts a signature fragment.
//  7. A line starting with the quote marker is quoted.
//  8. Anything else is content.
func (b Builder) Build(ls []lines.Line) []*Fragment {
	texts := lines.Texts(ls)

	var (
		fs  []*Fragment
		cur *Fragment
		st  state
	)

	for i, l := range ls {
		var c class
		st, c = b.step(st, texts, i)

		if cur == nil || c.opens || c.quoted != cur.quoted || c.signature != cur.signature {
			if cur != nil {
				fs = append(fs, cur)
			}
			cur = &Fragment{quoted: c.quoted, signature: c.signature}
		}

		cur.lines = append(cur.lines, l)
	}

	if cur != nil {
		fs = append(fs, cur)
	}

	hide(fs)

	return fs
}

// step classifies texts[i] given the state left by the line before it and
// returns the state for the line after it.
func (b Builder) step(st state, texts []string, i int) (state, class) {
	quoted := class{quoted: true}
	signature := class{signature: true}

	if st.span > 0 {
		return state{mode: modeHeader, span: st.span - 1}, quoted
	}

	if n := b.Library.MatchHeader(texts, i, b.Sender); n > 0 {
		return state{mode: modeHeader, span: n - 1}, class{quoted: true, opens: true}
	}

	line := texts[i]
	if pattern.IsBlank(line) {
		switch st.mode {
		case modeHeader:
			return st, quoted
		case modeSignature:
			return st, signature
		}
		return state{mode: modeContent}, class{}
	}

	switch st.mode {
	case modeSignature:
		c := signature
		c.opens = b.Library.MatchSignature(texts, i, b.Sender)
		return st, c
	case modeHeader:
		if pattern.IsQuoteMarker(line) {
			return state{mode: modeQuote}, quoted
		}
		return st, quoted
	}

	if b.Library.MatchSignature(texts, i, b.Sender) {
		return state{mode: modeSignature}, class{signature: true, opens: true}
	}

	if pattern.IsQuoteMarker(line) {
		return state{mode: modeQuote}, quoted
	}

	return state{mode: modeContent}, class{}
}

// hide sets the hidden flag in a single pass after the scan. A fragment is
// hidden if it is quoted, if it is a signature, or if the fragment before it
// is hidden.
func hide(fs []*Fragment) {
	prev := false
	for _, f := range fs {
		f.hidden = f.quoted || f.signature || prev
		prev = f.hidden
	}
}
