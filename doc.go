// Package reply extracts the newly written part of a plain text email reply.
//
// Replies usually carry a lot of baggage: the message being replied to, quoted
// line by line or pasted in whole below an Outlook style header block, the
// author's signature, a "Sent from my iPhone" footer, and the mailing list
// footer. Mail clients, ticketing systems, and notification digests usually
// just want the new reply. This package splits the body into fragments,
// decides which are quoted correspondence and which are signatures, and gives
// you back the rest:
//
//	visible := reply.ParseReply(body)
//
// If you know who wrote the message, tell the parser. It will then recognize
// sign-offs made of nothing but the author's name and quote headers that name
// the author, without mistaking a sentence like "My name is Jim Smith" for
// either:
//
//	visible := reply.ParseReply(body, reply.WithSender("Jim Smith <jim@example.com>"))
//
// For more detail, use Read to get the Email and inspect its fragments. The
// fragments always add back up to the original body, byte-for-byte, including
// the line breaks, which may be CRLF, LF, or CR.
//
// Parsing never fails. Any string, including the empty string, is a body. The
// body is never modified and no state is shared between calls, so the package
// is safe to use from many goroutines at once.
//
// The patterns used to recognize quote headers and signatures live in the
// pattern package. Quote headers are recognized in English, Portuguese,
// Spanish, French, and German. More can be added with WithHeaderMatchers.
package reply
