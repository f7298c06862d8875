package pattern

import (
	"regexp"
	"strings"

	"github.com/zostay/go-email-reply/identity"
)

var (
	// rulePattern is a line of nothing but dashes or nothing but underscores.
	// The classic "-- " delimiter is the shortest case.
	rulePattern = regexp.MustCompile(`^(?:-{2,}|_{2,})$`)

	// signOffPattern is a short line like "-Abhishek Kona".
	signOffPattern = regexp.MustCompile(`^-[\p{L}\p{N}]\S*(?:[ \t]+\S+){0,3}$`)

	devicePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^sent from my(?:\s+[\p{L}\p{N}'&-]+){1,4}\s*[.!]?$`),
		regexp.MustCompile(`(?i)^sent from (?:windows mail|mail for windows(?: 10| 11)?|outlook(?: for \p{L}+)?|yahoo mail(?: for \p{L}+)?)$`),
		regexp.MustCompile(`(?i)^get outlook for \p{L}+$`),
	}
)

// RuleSignature returns the matcher for a line made up entirely of two or more
// dashes or two or more underscores, with nothing else but surrounding
// whitespace. This covers the classic "-- " delimiter as well as the
// horizontal rules mailing lists and Outlook put above their footers. Dashes
// or underscores inside a longer line never match.
func RuleSignature() SignatureMatcher {
	return SignatureFunc(func(lines []string, i int, _ identity.Identity) bool {
		return rulePattern.MatchString(strings.TrimSpace(lines[i]))
	})
}

// SignOffSignature returns the matcher for a short sign-off like "-Sandro",
// a single dash immediately followed by a name. It must start a paragraph, so
// it is either the first line or the line before it is blank.
func SignOffSignature() SignatureMatcher {
	return SignatureFunc(func(lines []string, i int, _ identity.Identity) bool {
		if i > 0 && !IsBlank(lines[i-1]) {
			return false
		}
		return signOffPattern.MatchString(strings.TrimSpace(lines[i]))
	})
}

// DeviceSignature returns the matcher for mobile and desktop client footers
// such as "Sent from my iPhone" or "Sent from Windows Mail". The footer must be
// the whole line. "Sent from my desk, is much easier" continues into prose and
// does not match.
func DeviceSignature() SignatureMatcher {
	return SignatureFunc(func(lines []string, i int, _ identity.Identity) bool {
		l := strings.TrimSpace(lines[i])
		for _, p := range devicePatterns {
			if p.MatchString(l) {
				return true
			}
		}
		return false
	})
}

// SenderNameSignature returns the matcher for a sign-off made of nothing but
// the sender's own name, as in a signature written without any delimiter. It
// never matches on the first line or without a sender identity, and a line
// that merely mentions the name does not match.
func SenderNameSignature() SignatureMatcher {
	return SignatureFunc(func(lines []string, i int, sender identity.Identity) bool {
		return i > 0 && sender.IsNameLine(lines[i])
	})
}
