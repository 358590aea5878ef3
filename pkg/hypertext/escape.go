package hypertext

import "io"

// Trusted marks a string as pre-escaped markup. Trusted values bypass the
// escape boundary and are emitted verbatim, in content positions as well as
// inside quoted attribute values. Use Sanitize to derive Trusted text from
// untrusted input.
type Trusted string

// EscapeWriter is the escape boundary: every render step writes through one.
// Plain strings have the HTML-significant characters & < > " ' replaced by
// entities; trusted text is passed through untouched.
type EscapeWriter struct {
	w io.Writer
}

// NewEscapeWriter wraps a sink with the escape boundary.
func NewEscapeWriter(w io.Writer) *EscapeWriter {
	return &EscapeWriter{w: w}
}

// WriteString escapes text and writes it to the underlying sink.
func (e *EscapeWriter) WriteString(text string) error {
	last := 0
	for i := 0; i < len(text); i++ {
		var entity string
		switch text[i] {
		case '&':
			entity = "&amp;"
		case '<':
			entity = "&lt;"
		case '>':
			entity = "&gt;"
		case '"':
			entity = "&#34;"
		case '\'':
			entity = "&#39;"
		default:
			continue
		}
		if _, err := io.WriteString(e.w, text[last:i]); err != nil {
			return err
		}
		if _, err := io.WriteString(e.w, entity); err != nil {
			return err
		}
		last = i + 1
	}
	_, err := io.WriteString(e.w, text[last:])
	return err
}

// WriteTrusted writes pre-escaped markup verbatim.
func (e *EscapeWriter) WriteTrusted(markup string) error {
	_, err := io.WriteString(e.w, markup)
	return err
}
