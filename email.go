package reply

import (
	"github.com/zostay/go-email-reply/fragment"
	"github.com/zostay/go-email-reply/lines"
)

// Email is a parsed reply. It is immutable once Read returns it.
type Email struct {
	fragments  []*fragment.Fragment
	visible    string
	newContent string
}

// Read splits the text of a reply into fragments. The text is only read, never
// modified. Read never fails. The empty string results in an Email with no
// fragments.
func Read(text string, opts ...ReadOption) *Email {
	r := newReader(opts)

	b := fragment.Builder{
		Library: r.library,
		Sender:  r.sender,
	}

	return newEmail(b.Build(lines.Split(text)))
}

// newEmail wraps the fragments and works out the derived text.
func newEmail(fs []*fragment.Fragment) *Email {
	visible := make([]*fragment.Fragment, 0, len(fs))
	for _, f := range fs {
		if !f.IsHidden() {
			visible = append(visible, f)
		}
	}

	lead := len(fs)
	for i, f := range fs {
		if f.IsQuoted() {
			lead = i
			break
		}
	}

	return &Email{
		fragments:  fs,
		visible:    fragment.JoinContent(visible),
		newContent: fragment.JoinContent(fs[:lead]),
	}
}

// Fragments returns the fragments of the reply in order. Concatenating their
// String() values reproduces the text given to Read.
func (e *Email) Fragments() []*fragment.Fragment {
	fs := make([]*fragment.Fragment, len(e.fragments))
	copy(fs, e.fragments)
	return fs
}

// VisibleText returns the content of the fragments that are not hidden, in
// order, separated by a blank line, with trailing whitespace removed. Line
// breaks are always LF.
func (e *Email) VisibleText() string {
	return e.visible
}

// NewContent returns the newly written part of the reply: the content of the
// fragments that come before the first quoted fragment, separated by a blank
// line, with trailing whitespace removed. Unlike VisibleText, it keeps any
// signature that precedes the quoted correspondence.
func (e *Email) NewContent() string {
	return e.newContent
}

// String returns the visible text.
func (e *Email) String() string {
	return e.visible
}

// ParseReply returns the visible text of the reply. It is the same as
// Read(text, opts...).VisibleText(), except that the empty string is answered
// without parsing.
func ParseReply(text string, opts ...ReadOption) string {
	if text == "" {
		return ""
	}
	return Read(text, opts...).VisibleText()
}
