package pattern

import (
	"regexp"
	"sort"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/zostay/go-email-reply/identity"
)

var (
	// separatorPattern matches the one-line banners some clients put above
	// the quoted or forwarded message.
	separatorPattern = regexp.MustCompile(`(?i)^(?:-{2,}\s*(?:original message|forwarded message|mensagem original|mensagem encaminhada|mensaje original|mensaje reenviado|message d'origine|message transféré|ursprüngliche nachricht|weitergeleitete nachricht)\s*-{2,}|begin forwarded message:)$`)

	// wroteCloser matches the end of a "wrote:" line in any supported locale.
	wroteCloser = regexp.MustCompile(`(?i)(?:wrote|escreveu|escribió|a\s+écrit)\s*:$`)
)

// wroteHeader matches the single-line "On <date>, <name> wrote:" header of a
// locale, including the variant where the client wrapped it across lines.
type wroteHeader struct {
	loc Locale
}

// WroteHeader returns the matcher for the "On <date>, <name> wrote:" header of
// the given locale. The header may be wrapped across up to MaxWroteLines
// lines, but never across a blank or quoted line, and it must mention a date
// or time, so it must contain at least one digit.
func WroteHeader(loc Locale) HeaderMatcher {
	return wroteHeader{loc}
}

// MatchHeader implements HeaderMatcher.
func (h wroteHeader) MatchHeader(lines []string, i int, _ identity.Identity) int {
	joined := ""
	for n := 1; n <= MaxWroteLines && i+n <= len(lines); n++ {
		l := strings.TrimSpace(lines[i+n-1])
		if l == "" || IsQuoteMarker(l) {
			return 0
		}

		if n == 1 {
			joined = l
		} else {
			joined += " " + l
		}

		if h.loc.Wrote.MatchString(joined) {
			if !strings.ContainsAny(joined, "0123456789") {
				return 0
			}
			return n
		}
	}

	return 0
}

// SeparatorHeader returns the matcher for the banner lines that introduce an
// original or forwarded message, such as "-----Original Message-----" or
// "Begin forwarded message:".
func SeparatorHeader() HeaderMatcher {
	return HeaderFunc(func(lines []string, i int, _ identity.Identity) int {
		if separatorPattern.MatchString(strings.TrimSpace(lines[i])) {
			return 1
		}
		return 0
	})
}

// SenderWroteHeader returns the matcher for a "<sender> wrote:" line that has
// no "On <date>" prefix. The line must end with a "wrote:" marker of a
// supported locale and it must mention the address or name of the sender. It
// may be wrapped onto a second line when the first does not end a sentence.
// Without a sender identity it never matches.
func SenderWroteHeader() HeaderMatcher {
	return HeaderFunc(func(lines []string, i int, sender identity.Identity) int {
		if sender.IsZero() {
			return 0
		}

		joined := ""
		for n := 1; n <= 2 && i+n <= len(lines); n++ {
			l := strings.TrimSpace(lines[i+n-1])
			if l == "" || IsQuoteMarker(l) {
				return 0
			}

			if n == 1 {
				joined = l
			} else {
				if strings.ContainsAny(joined[len(joined)-1:], ".!?") {
					return 0
				}
				joined += " " + l
			}

			if wroteCloser.MatchString(joined) {
				if sender.Mentioned(joined) {
					return n
				}
				return 0
			}
		}

		return 0
	})
}

// fieldBlock matches a block of labeled header fields, one locale at a time.
type fieldBlock struct {
	label  *regexp.Regexp
	fields map[string]Field
}

// FieldBlockHeader returns the matcher for a block of labeled fields such as
// the From, Sent, To, and Subject lines that Outlook and many web clients
// write above the message they quote. The fields may come in any order and
// each field value may be wrapped across up to MaxWrappedFieldLines lines.
// The block ends at a blank line, at a repeated field, or at a line that is
// neither a field nor a wrapped value.
//
// When emphasized is true, the labels must be wrapped in markup emphasis, as
// in "*From:*" or "**From**:". Otherwise, the labels must be bare.
//
// A block qualifies as a quote header when it has a From field and at least
// two other fields. A block with a From field and just one other field also
// qualifies if that other field is a date that parses or if the From field
// names the sender.
func FieldBlockHeader(loc Locale, emphasized bool) HeaderMatcher {
	fields := make(map[string]Field)
	labels := make([]string, 0, 2*len(loc.Fields))
	for f, ls := range loc.Fields {
		for _, l := range ls {
			fields[identity.Fold(l)] = f
			labels = append(labels, regexp.QuoteMeta(l))
		}
	}

	// longest labels first so that "Enviado el" is preferred over "Enviado"
	sort.Slice(labels, func(i, j int) bool {
		if len(labels[i]) != len(labels[j]) {
			return len(labels[i]) > len(labels[j])
		}
		return labels[i] < labels[j]
	})

	alt := strings.Join(labels, "|")
	expr := `(?i)^(` + alt + `)\s*:\s*(.*)$`
	if emphasized {
		expr = `(?i)^\*{1,2}(` + alt + `)(?:\s*:\s*\*{1,2}|\*{1,2}\s*:)\s*(.*)$`
	}

	return fieldBlock{
		label:  regexp.MustCompile(expr),
		fields: fields,
	}
}

// field parses a field line, returning the role of its label and its value.
func (b fieldBlock) field(line string) (Field, string, bool) {
	m := b.label.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}

	f, ok := b.fields[identity.Fold(m[1])]
	return f, strings.TrimSpace(m[2]), ok
}

// wrapped returns the number of lines starting at lines[j] that continue the
// value of the previous field. These must be followed by another field line.
func (b fieldBlock) wrapped(lines []string, j int) int {
	for n := 1; n <= MaxWrappedFieldLines && j+n < len(lines); n++ {
		l := lines[j+n-1]
		if IsBlank(l) || IsQuoteMarker(l) {
			return 0
		}

		if _, _, ok := b.field(lines[j+n]); ok {
			return n
		}
	}
	return 0
}

// MatchHeader implements HeaderMatcher.
func (b fieldBlock) MatchHeader(lines []string, i int, sender identity.Identity) int {
	if _, _, ok := b.field(lines[i]); !ok {
		return 0
	}

	seen := make(map[Field]string, len(b.fields))
	last := FieldFrom
	j := i
Block:
	for j < len(lines) && !IsBlank(lines[j]) {
		if f, v, ok := b.field(lines[j]); ok {
			if _, dup := seen[f]; dup {
				break Block
			}
			seen[f] = v
			last = f
			j++
			continue
		}

		n := b.wrapped(lines, j)
		if n == 0 {
			break Block
		}

		for _, l := range lines[j : j+n] {
			seen[last] += " " + strings.TrimSpace(l)
		}
		j += n
	}

	if qualifies(seen, sender) {
		return j - i
	}
	return 0
}

// qualifies decides whether the fields seen make up a quote header.
func qualifies(seen map[Field]string, sender identity.Identity) bool {
	from, hasFrom := seen[FieldFrom]
	switch {
	case !hasFrom:
		return false
	case len(seen) >= 3:
		return true
	case len(seen) == 2:
		if date, ok := seen[FieldDate]; ok && isDate(date) {
			return true
		}
		return sender.Mentioned(from)
	}
	return false
}

// isDate returns true if the value of a date field parses as a date.
func isDate(v string) (ok bool) {
	// dateparse has been known to panic on some malformed input
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	_, err := dateparse.ParseAny(strings.TrimSpace(v))
	return err == nil
}
