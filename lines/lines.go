// Package lines splits a message body into lines without losing anything. Each
// Line remembers the line break that ended it, so that joining the lines back
// together always reproduces the input byte-for-byte, no matter whether the
// body used CRLF, LF, bare CR, or some mix of them.
package lines

import (
	"bufio"
	"bytes"
	"strings"
)

// Line is a single line of a message body.
type Line struct {
	// Text is the content of the line with the line break removed.
	Text string

	// Break is the line break that ended the line, or Meh for a final line
	// with no line break.
	Break Break
}

// String returns the line exactly as it appeared in the input.
func (l Line) String() string {
	return l.Text + l.Break.String()
}

// Normalized returns the line with its line break replaced by LF.
func (l Line) Normalized() string {
	return l.Text + l.Break.Normalized().String()
}

// IsBlank returns true if the line contains nothing but whitespace.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// ScanLines is a bufio.SplitFunc similar to bufio.ScanLines. The difference is
// that the returned token keeps its line break and that CRLF, LF, and bare CR
// are all treated as line breaks. A final line without a line break is
// returned as-is.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}

		// a CR at the end of the buffer might be the first half of a CRLF
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}

		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i+2], nil
		}

		return i + 1, data[:i+1], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// request more data
	return 0, nil, nil
}

// Split breaks the text up into lines. The empty string has no lines. The
// returned lines always satisfy Join(Split(text)) == text.
func Split(text string) []Line {
	if text == "" {
		return nil
	}

	sc := bufio.NewScanner(strings.NewReader(text))

	// the whole input fits in the buffer, so no line is ever too long
	sc.Buffer(make([]byte, 0, 4096), len(text)+1)
	sc.Split(ScanLines)

	ls := make([]Line, 0, strings.Count(text, "\n")+1)
	for sc.Scan() {
		ls = append(ls, newLine(sc.Text()))
	}

	return ls
}

// newLine separates the line break from the token returned by ScanLines.
func newLine(tok string) Line {
	for _, b := range []Break{CRLF, LF, CR} {
		if strings.HasSuffix(tok, b.String()) {
			return Line{
				Text:  strings.TrimSuffix(tok, b.String()),
				Break: b,
			}
		}
	}
	return Line{Text: tok}
}

// Join puts the lines back together exactly as they were split.
func Join(ls []Line) string {
	var sb strings.Builder
	for _, l := range ls {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// JoinNormalized puts the lines back together with every line break replaced
// by LF.
func JoinNormalized(ls []Line) string {
	var sb strings.Builder
	for _, l := range ls {
		sb.WriteString(l.Normalized())
	}
	return sb.String()
}

// Texts returns the text of each line with the line breaks removed.
func Texts(ls []Line) []string {
	ts := make([]string, len(ls))
	for i, l := range ls {
		ts[i] = l.Text
	}
	return ts
}
