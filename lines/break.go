package lines

// Break represents the line break that terminated a line of a message body.
type Break string

// Constants for the line breaks recognized while splitting a body. The last
// line of a body that does not end with a line break has a Break of Meh.
const (
	Meh  Break = ""         // no line break, end of input
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - Commodores/old Macs linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// Normalized returns LF for any line break and Meh for Meh. This is the form
// used whenever text is compared or presented rather than reconstructed.
func (b Break) Normalized() Break {
	if b == Meh {
		return Meh
	}
	return LF
}
