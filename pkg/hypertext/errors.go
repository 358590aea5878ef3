package hypertext

import "fmt"

// LexicalError reports malformed markup detected while tokenizing literal
// text: a bad first character of a tag name, a stray = before an attribute
// name, an invalid comment, a missing attribute value, missing whitespace
// between attributes, or an unexpected solidus.
type LexicalError struct {
	Cause    string
	Fragment string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("hypertext: %s near %q", e.Cause, e.Fragment)
}

// UnsupportedConstructError reports markup that is recognised but
// intentionally unimplemented: DOCTYPE declarations, CDATA sections,
// processing instructions, and script data escape sequences.
type UnsupportedConstructError struct {
	Construct string
	Fragment  string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("hypertext: %s is not supported near %q", e.Construct, e.Fragment)
}

// InvalidInterpolationPositionError reports a value slot in a lexical
// position where interpolation is never legal, such as inside a comment or
// in the middle of a tag name. Slot is the zero-based index of the value in
// the input sequence; Context describes the position.
type InvalidInterpolationPositionError struct {
	Slot    int
	Context string
}

func (e *InvalidInterpolationPositionError) Error() string {
	return fmt.Sprintf("hypertext: value %d interpolated in %s position", e.Slot, e.Context)
}

// AmbiguousUnquotedAttributeError reports an unquoted attribute value slot
// followed by literal text that does not begin with a delimiter, or by a
// second value slot. Following is empty for the second-value case.
type AmbiguousUnquotedAttributeError struct {
	Slot      int
	Following string
}

func (e *AmbiguousUnquotedAttributeError) Error() string {
	if e.Following == "" {
		return fmt.Sprintf("hypertext: value %d: unquoted attribute value already holds an interpolated value", e.Slot)
	}
	return fmt.Sprintf("hypertext: value %d: unquoted attribute value must be followed by a delimiter, found %q", e.Slot, e.Following)
}

// RawTextContentViolationError reports an interpolated value inside a
// raw-text element whose rendered text contains the forbidden marker for
// that element: the closing tag (case-insensitive), or <!-- inside script.
type RawTextContentViolationError struct {
	Slot      int
	Element   string
	Forbidden string
}

func (e *RawTextContentViolationError) Error() string {
	return fmt.Sprintf("hypertext: value %d: content inside <%s> may not contain %q", e.Slot, e.Element, e.Forbidden)
}

// InvalidAttributeNameError reports a name that fails the attribute-name
// grammar: empty, or containing one of / > = ' < & % \ or whitespace or
// control characters.
type InvalidAttributeNameError struct {
	Name string
}

func (e *InvalidAttributeNameError) Error() string {
	return fmt.Sprintf("hypertext: invalid attribute name %q", e.Name)
}

// BooleanInQuotedContextError reports a boolean interpolated inside an
// attribute value. Booleans are only meaningful as a whole attribute value
// in an unquoted position or a spread, where true emits a bare attribute
// and false omits it.
type BooleanInQuotedContextError struct {
	Slot int
}

func (e *BooleanInQuotedContextError) Error() string {
	return fmt.Sprintf("hypertext: value %d: boolean interpolated inside an attribute value; interpolate it as the whole attribute value instead", e.Slot)
}
