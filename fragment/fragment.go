// Package fragment splits a reply into fragments. A fragment is a run of
// contiguous lines that share one classification: newly written content,
// quoted correspondence, or signature.
package fragment

import (
	"strings"
	"unicode"

	"github.com/zostay/go-email-reply/lines"
)

// Fragment is a sealed run of lines of a reply. A Fragment is never modified
// after the Builder returns it.
type Fragment struct {
	lines     []lines.Line
	quoted    bool
	signature bool
	hidden    bool
}

// String returns the lines of the fragment exactly as they appeared in the
// input, line breaks included. Concatenating the String() of every fragment in
// order reproduces the input.
func (f *Fragment) String() string {
	return lines.Join(f.lines)
}

// Content returns the lines of the fragment with every line break replaced by
// LF.
func (f *Fragment) Content() string {
	return lines.JoinNormalized(f.lines)
}

// Lines returns a copy of the lines making up the fragment.
func (f *Fragment) Lines() []lines.Line {
	ls := make([]lines.Line, len(f.lines))
	copy(ls, f.lines)
	return ls
}

// Len returns the number of lines in the fragment.
func (f *Fragment) Len() int {
	return len(f.lines)
}

// IsQuoted returns true if the fragment holds quoted correspondence: lines
// starting with the quote marker, or a quote header and the lines following
// it.
func (f *Fragment) IsQuoted() bool {
	return f.quoted
}

// IsSignature returns true if the fragment was opened by a signature
// delimiter.
func (f *Fragment) IsSignature() bool {
	return f.signature
}

// IsHidden returns true if the fragment is left out of the visible text. A
// fragment is hidden when it is quoted, when it is a signature, or when any
// fragment before it is hidden.
func (f *Fragment) IsHidden() bool {
	return f.hidden
}

// IsEmpty returns true if the fragment contains nothing but whitespace.
func (f *Fragment) IsEmpty() bool {
	for _, l := range f.lines {
		if !l.IsBlank() {
			return false
		}
	}
	return true
}

// JoinContent joins the Content() of the fragments with a blank line between
// them and removes trailing whitespace from the result.
func JoinContent(fs []*Fragment) string {
	cs := make([]string, len(fs))
	for i, f := range fs {
		cs[i] = strings.TrimRight(f.Content(), "\n")
	}
	return strings.TrimRightFunc(strings.Join(cs, "\n\n"), unicode.IsSpace)
}
