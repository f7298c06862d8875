// Package identity normalizes the optional sender identity handed to the reply
// parser. The identity is the "Name <address>" of the person who wrote the
// message being parsed. It is only ever used as an extra signal to recognize
// quote headers and sign-offs that refer to that person.
package identity

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/zostay/go-addr/pkg/addr"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	// nameAddrPattern is the lenient fallback used when the identity is not a
	// strict RFC 5322 mailbox, e.g. the unquoted comma in Smith, Jim <j@x>.
	nameAddrPattern = regexp.MustCompile(`^\s*(.*?)\s*<([^<>]*)>\s*$`)

	// lastFirstPattern matches "Last, First" with optional trailing segments.
	lastFirstPattern = regexp.MustCompile(`^\s*([^,\s]+)\s*,\s*([^,]+?)\s*(?:,.*)?$`)
)

// Identity is the parsed sender identity. The zero value means that no sender
// is known.
type Identity struct {
	// Name is the normalized display name in "First Last" order. It may be
	// empty.
	Name string

	// RawName is the display name as given, minus surrounding quotes. It may
	// be empty and it may be identical to Name.
	RawName string

	// Address is the email address of the sender. It may be empty.
	Address string
}

// Parse builds an Identity from a "Name <address>" string, a quoted name
// form, or a bare address. It never fails. Anything it cannot make sense of
// results in empty fields.
func Parse(s string) Identity {
	if strings.TrimSpace(s) == "" {
		return Identity{}
	}

	raw := ParseName(s)
	return Identity{
		Name:    NormalizeName(raw),
		RawName: raw,
		Address: strings.TrimSpace(ParseAddress(s)),
	}
}

// IsZero returns true if the identity carries neither a name nor an address.
func (id Identity) IsZero() bool {
	return id.Name == "" && id.RawName == "" && id.Address == ""
}

// Names returns the distinct, non-empty names the sender may go by: the
// normalized name first and then the raw name if it differs.
func (id Identity) Names() []string {
	names := make([]string, 0, 2)
	if id.Name != "" {
		names = append(names, id.Name)
	}
	if id.RawName != "" && Fold(id.RawName) != Fold(id.Name) {
		names = append(names, id.RawName)
	}
	return names
}

// Mentioned returns true if the text contains the sender's address or any of
// the sender's names, compared case-insensitively. This is a bare textual
// check. Callers must only use it to confirm a line that already has the
// structure of a quote header.
func (id Identity) Mentioned(text string) bool {
	if id.IsZero() {
		return false
	}

	ft := Fold(text)
	if id.Address != "" && strings.Contains(ft, Fold(id.Address)) {
		return true
	}

	for _, n := range id.Names() {
		if strings.Contains(ft, Fold(n)) {
			return true
		}
	}

	return false
}

// IsNameLine returns true if the line consists of nothing but one of the
// sender's names. A middle initial added between the first and last name is
// tolerated, so "Jim B. Smith" is a name line for "Jim Smith".
func (id Identity) IsNameLine(line string) bool {
	lt := strings.Fields(Fold(line))
	if len(lt) == 0 {
		return false
	}

	for _, n := range id.Names() {
		nt := strings.Fields(Fold(n))
		if equalFields(lt, nt) {
			return true
		}

		if len(nt) >= 2 && len(lt) == len(nt)+1 &&
			lt[0] == nt[0] && isInitial(lt[1]) && equalFields(lt[2:], nt[1:]) {
			return true
		}
	}

	return false
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isInitial is true for "b" and "b.".
func isInitial(s string) bool {
	rs := []rune(strings.TrimSuffix(s, "."))
	return len(rs) == 1 && unicode.IsLetter(rs[0])
}

// ParseName returns the display name of a "Name <address>" string with any
// surrounding single or double quotes removed. It returns the empty string
// when there is no display name, as with a bare address.
//
// The name is taken as written in front of the angle brackets. The mailbox
// parser folds the whitespace out of an unquoted phrase, so it is only used
// for the address.
func ParseName(address string) string {
	if m := nameAddrPattern.FindStringSubmatch(address); m != nil {
		return trimQuotes(m[1])
	}

	return ""
}

// ParseAddress returns the address inside the angle brackets of a
// "Name <address>" string. If there are no angle brackets, the input is
// returned unchanged.
func ParseAddress(address string) string {
	if mb, err := addr.ParseEmailMailbox(strings.TrimSpace(address)); err == nil {
		if a := mb.Address(); a != "" {
			return a
		}
	}

	if m := nameAddrPattern.FindStringSubmatch(address); m != nil {
		return strings.TrimSpace(m[2])
	}

	return address
}

// NormalizeName turns "Last, First" into "First Last", dropping any further
// comma separated segments such as titles or qualifications. A name that
// already reads "First Last, MD" loses the qualification. Any other name is
// returned unchanged.
func NormalizeName(name string) string {
	m := lastFirstPattern.FindStringSubmatch(name)
	if m == nil {
		if i := strings.Index(name, ","); i > -1 {
			return strings.TrimSpace(name[:i])
		}
		return name
	}

	return m[2] + " " + m[1]
}

// Fold returns the form of s used for case-insensitive comparisons: NFC
// normalized, case folded, with runs of whitespace collapsed to a single
// space.
func Fold(s string) string {
	s = norm.NFC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	return s
}
