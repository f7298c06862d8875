package pattern

import "regexp"

// Field identifies the role of a labeled field in a quote header block,
// independent of the language of its label.
type Field int

// The fields recognized in quote header blocks.
const (
	FieldFrom Field = iota
	FieldTo
	FieldCc
	FieldBcc
	FieldDate
	FieldSubject
	FieldReplyTo
)

// String returns the English label of the field.
func (f Field) String() string {
	switch f {
	case FieldFrom:
		return "From"
	case FieldTo:
		return "To"
	case FieldCc:
		return "Cc"
	case FieldBcc:
		return "Bcc"
	case FieldDate:
		return "Date"
	case FieldSubject:
		return "Subject"
	case FieldReplyTo:
		return "Reply-To"
	}
	return "Unknown"
}

// Locale is the set of keywords a mail client uses when it writes quote
// headers in one language.
type Locale struct {
	// Name is a short tag for the locale, e.g. "en".
	Name string

	// Wrote matches a complete "On <date>, <name> wrote:" header, after any
	// wrapped lines have been joined with single spaces.
	Wrote *regexp.Regexp

	// Fields maps each field role to the labels used for it. Labels are
	// matched case-insensitively.
	Fields map[Field][]string
}

// The supported locales.
var (
	English = Locale{
		Name:  "en",
		Wrote: regexp.MustCompile(`^On\s.+wrote:$`),
		Fields: map[Field][]string{
			FieldFrom:    {"From"},
			FieldTo:      {"To"},
			FieldCc:      {"Cc"},
			FieldBcc:     {"Bcc"},
			FieldDate:    {"Date", "Sent"},
			FieldSubject: {"Subject"},
			FieldReplyTo: {"Reply-To"},
		},
	}

	Portuguese = Locale{
		Name:  "pt",
		Wrote: regexp.MustCompile(`^Em\s.+escreveu:$`),
		Fields: map[Field][]string{
			FieldFrom:    {"De"},
			FieldTo:      {"Para"},
			FieldCc:      {"Cc"},
			FieldBcc:     {"Cco"},
			FieldDate:    {"Data", "Enviada em", "Enviado em", "Enviada", "Enviado"},
			FieldSubject: {"Assunto"},
			FieldReplyTo: {"Responder a"},
		},
	}

	Spanish = Locale{
		Name:  "es",
		Wrote: regexp.MustCompile(`^El\s.+escribió:$`),
		Fields: map[Field][]string{
			FieldFrom:    {"De"},
			FieldTo:      {"Para"},
			FieldCc:      {"CC"},
			FieldBcc:     {"CCO"},
			FieldDate:    {"Fecha", "Enviado el", "Enviado"},
			FieldSubject: {"Asunto"},
			FieldReplyTo: {"Responder a"},
		},
	}

	French = Locale{
		Name:  "fr",
		Wrote: regexp.MustCompile(`^Le\s.+a\s+écrit\s*:$`),
		Fields: map[Field][]string{
			FieldFrom:    {"De"},
			FieldTo:      {"À", "A"},
			FieldCc:      {"Cc"},
			FieldBcc:     {"Cci"},
			FieldDate:    {"Date", "Envoyé le", "Envoyé"},
			FieldSubject: {"Objet", "Sujet"},
			FieldReplyTo: {"Répondre à"},
		},
	}

	German = Locale{
		Name:  "de",
		Wrote: regexp.MustCompile(`^Am\s.+\sschrieb\s.+:$`),
		Fields: map[Field][]string{
			FieldFrom:    {"Von"},
			FieldTo:      {"An"},
			FieldCc:      {"Cc", "Kopie"},
			FieldBcc:     {"Bcc", "Blindkopie"},
			FieldDate:    {"Datum", "Gesendet"},
			FieldSubject: {"Betreff"},
			FieldReplyTo: {"Antwort an"},
		},
	}
)

// Locales lists the locales used by DefaultLibrary, in the order their
// matchers are tried. Other locales are supported by adding their WroteHeader
// and FieldBlockHeader matchers to a Library.
var Locales = []Locale{English, Portuguese, Spanish, French, German}
