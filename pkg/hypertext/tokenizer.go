package hypertext

// stepKind selects the rendering rule for one render step. Every Rendered
// step carries a kind the tokenizer explicitly whitelisted for the position
// the value occupied; all other positions fail at classification time.
type stepKind int

const (
	stepRaw        stepKind = iota // validated literal markup, emitted verbatim
	stepContent                    // value in element content, escaped
	stepRawText                    // value inside a raw-text element, checked, unescaped
	stepAttrValue                  // value inside caller-supplied attribute quotes
	stepAttrPair                   // whole attribute: serialized as name='value' or omitted
	stepAttrSpread                 // attribute mapping spread into a tag
)

type step struct {
	kind    stepKind
	text    string // stepRaw markup
	value   any
	slot    int    // zero-based value index, for diagnostics
	element string // enclosing raw-text element for stepRawText
	name    string // attribute name for stepAttrPair
}

// tokenizer consumes the literal/value sequence in order: literal chunks
// advance the state machine character by character, value slots are
// classified against the current state. Transitions return an explicit
// advance flag instead of rewinding a cursor, so "reconsume this character
// in another state" is visible in the control flow.
type tokenizer struct {
	state   state
	steps   []step
	raw     []byte // pending literal output, flushed before each value step
	tag     []byte // name of the tag currently being scanned, lowercased
	opening bool   // the current tag is a start tag
	element string // enclosing raw-text element, "" outside raw text
	attr    []byte // current attribute name as written
	attrPos int    // offset in raw where the current attribute name starts
	endTag  []byte // candidate end tag name inside raw text, lowercased

	// guards set when a value step constrains the part that follows it
	afterUnquoted bool // next literal must begin with a delimiter
	afterSpread   bool // next literal needs a space unless it begins with one
}

func newTokenizer() *tokenizer {
	return &tokenizer{attrPos: -1}
}

// feedLiteral scans one literal chunk, appending it to the pending raw
// output as validated markup.
func (t *tokenizer) feedLiteral(chunk string) error {
	if t.afterUnquoted {
		t.afterUnquoted = false
		if !isDelimiter(chunk[0]) {
			return &AmbiguousUnquotedAttributeError{Slot: t.lastSlot(), Following: snippet(chunk)}
		}
	}
	if t.afterSpread {
		t.afterSpread = false
		if !isDelimiter(chunk[0]) {
			chunk = " " + chunk
		}
	}

	base := len(t.raw)
	t.raw = append(t.raw, chunk...)
	i := 0
	for i < len(chunk) {
		advance, err := t.step(chunk[i], base+i)
		if err != nil {
			return err
		}
		if advance {
			i++
		}
	}
	return nil
}

// feedValue classifies one value slot against the current state and emits
// the corresponding render step, or fails for non-whitelisted positions.
func (t *tokenizer) feedValue(value any, slot int) error {
	switch t.state {
	case stateData:
		t.flushRaw()
		t.steps = append(t.steps, step{kind: stepContent, value: value, slot: slot})

	case stateRawText:
		t.flushRaw()
		t.steps = append(t.steps, step{kind: stepRawText, value: value, slot: slot, element: t.element})

	case stateBeforeAttributeValue:
		// Rewrite the pending literal to drop the trailing `name=` (and the
		// whitespace before it); the pair serializer re-emits the attribute
		// with its own leading space and quoting, or omits it entirely.
		name := string(t.attr)
		if err := validateName(name); err != nil {
			return err
		}
		cut := t.attrPos
		for cut > 0 && isWhitespace(t.raw[cut-1]) {
			cut--
		}
		t.raw = t.raw[:cut]
		t.flushRaw()
		t.steps = append(t.steps, step{kind: stepAttrPair, value: value, slot: slot, name: name})
		t.state = stateAttributeValueUnquoted
		t.afterUnquoted = true

	case stateAttributeValueUnquoted:
		return &AmbiguousUnquotedAttributeError{Slot: slot}

	case stateAttributeValueDoubleQuoted, stateAttributeValueSingleQuoted:
		t.flushRaw()
		t.steps = append(t.steps, step{kind: stepAttrValue, value: value, slot: slot})

	case stateBeforeAttributeName:
		if n := len(t.raw); n > 0 && isWhitespace(t.raw[n-1]) {
			t.raw = t.raw[:n-1]
		}
		t.flushRaw()
		t.steps = append(t.steps, step{kind: stepAttrSpread, value: value, slot: slot})
		t.afterSpread = true

	default:
		return &InvalidInterpolationPositionError{Slot: slot, Context: t.state.describe()}
	}
	return nil
}

// flushRaw converts the pending literal output into a single raw step, so
// adjacent literal chunks merge before assembly.
func (t *tokenizer) flushRaw() {
	if len(t.raw) == 0 {
		return
	}
	t.steps = append(t.steps, step{kind: stepRaw, text: string(t.raw)})
	t.raw = t.raw[:0]
}

// step applies one transition: (state, ch) -> (state, advance). pos is the
// character's offset in the pending raw output, used to anchor attribute
// rewrites and error fragments.
func (t *tokenizer) step(ch byte, pos int) (bool, error) {
	switch t.state {
	case stateData:
		if ch == '<' {
			t.state = stateTagOpen
		}

	case stateTagOpen:
		switch {
		case ch == '!':
			t.state = stateMarkupDeclarationOpen
		case ch == '/':
			t.state = stateEndTagOpen
		case isASCIILetter(ch):
			t.opening = true
			t.tag = t.tag[:0]
			t.state = stateTagName
			return false, nil
		case ch == '?':
			return false, &UnsupportedConstructError{Construct: "processing instruction", Fragment: t.fragmentAt(pos)}
		default:
			return false, &LexicalError{Cause: "invalid first character of a tag name", Fragment: t.fragmentAt(pos)}
		}

	case stateEndTagOpen:
		switch {
		case isASCIILetter(ch):
			t.opening = false
			t.tag = t.tag[:0]
			t.state = stateTagName
			return false, nil
		case ch == '>':
			return false, &LexicalError{Cause: "missing end tag name", Fragment: t.fragmentAt(pos)}
		default:
			return false, &LexicalError{Cause: "invalid first character of a tag name", Fragment: t.fragmentAt(pos)}
		}

	case stateTagName:
		switch {
		case isWhitespace(ch):
			t.state = stateBeforeAttributeName
		case ch == '/':
			t.state = stateSelfClosingStartTag
		case ch == '>':
			t.state = t.closeTag()
		default:
			t.tag = append(t.tag, toLower(ch))
		}

	case stateBeforeAttributeName:
		switch {
		case isWhitespace(ch):
		case ch == '/' || ch == '>':
			t.state = stateAfterAttributeName
			return false, nil
		case ch == '=':
			return false, &LexicalError{Cause: "unexpected equals sign before attribute name", Fragment: t.fragmentAt(pos)}
		default:
			t.attr = t.attr[:0]
			t.attrPos = pos
			t.state = stateAttributeName
			return false, nil
		}

	case stateAttributeName:
		switch {
		case isWhitespace(ch) || ch == '/' || ch == '>':
			t.state = stateAfterAttributeName
			return false, nil
		case ch == '=':
			t.state = stateBeforeAttributeValue
		case ch == '"' || ch == '\'' || ch == '<':
			return false, &LexicalError{Cause: "unexpected character in attribute name", Fragment: t.fragmentAt(pos)}
		default:
			t.attr = append(t.attr, ch)
		}

	case stateAfterAttributeName:
		switch {
		case isWhitespace(ch):
		case ch == '/':
			t.state = stateSelfClosingStartTag
		case ch == '=':
			t.state = stateBeforeAttributeValue
		case ch == '>':
			t.state = t.closeTag()
		default:
			t.attr = t.attr[:0]
			t.attrPos = pos
			t.state = stateAttributeName
			return false, nil
		}

	case stateBeforeAttributeValue:
		switch {
		case isWhitespace(ch):
		case ch == '"':
			t.state = stateAttributeValueDoubleQuoted
		case ch == '\'':
			t.state = stateAttributeValueSingleQuoted
		case ch == '>':
			return false, &LexicalError{Cause: "missing attribute value", Fragment: t.fragmentAt(pos)}
		default:
			t.state = stateAttributeValueUnquoted
			return false, nil
		}

	case stateAttributeValueDoubleQuoted:
		if ch == '"' {
			t.state = stateAfterAttributeValueQuoted
		}

	case stateAttributeValueSingleQuoted:
		if ch == '\'' {
			t.state = stateAfterAttributeValueQuoted
		}

	case stateAttributeValueUnquoted:
		switch {
		case isWhitespace(ch):
			t.state = stateBeforeAttributeName
		case ch == '>':
			t.state = t.closeTag()
		case ch == '"' || ch == '\'' || ch == '<' || ch == '=' || ch == '`':
			return false, &LexicalError{Cause: "unexpected character in unquoted attribute value", Fragment: t.fragmentAt(pos)}
		}

	case stateAfterAttributeValueQuoted:
		switch {
		case isWhitespace(ch):
			t.state = stateBeforeAttributeName
		case ch == '/':
			t.state = stateSelfClosingStartTag
		case ch == '>':
			t.state = t.closeTag()
		default:
			return false, &LexicalError{Cause: "missing whitespace between attributes", Fragment: t.fragmentAt(pos)}
		}

	case stateSelfClosingStartTag:
		if ch != '>' {
			return false, &LexicalError{Cause: "unexpected solidus in tag", Fragment: t.fragmentAt(pos)}
		}
		t.state = t.closeTag()

	case stateMarkupDeclarationOpen:
		switch {
		case ch == '-':
			t.state = stateCommentStart
		case ch == 'd' || ch == 'D':
			return false, &UnsupportedConstructError{Construct: "DOCTYPE declaration", Fragment: t.fragmentAt(pos)}
		case ch == '[':
			return false, &UnsupportedConstructError{Construct: "CDATA section", Fragment: t.fragmentAt(pos)}
		default:
			return false, &LexicalError{Cause: "incorrectly opened comment", Fragment: t.fragmentAt(pos)}
		}

	case stateCommentStart:
		switch {
		case ch == '-':
			t.state = stateCommentStartDash
		case ch == '>':
			return false, &LexicalError{Cause: "abrupt closing of empty comment", Fragment: t.fragmentAt(pos)}
		default:
			t.state = stateComment
			return false, nil
		}

	case stateCommentStartDash:
		switch {
		case ch == '-':
			t.state = stateCommentEnd
		case ch == '>':
			return false, &LexicalError{Cause: "abrupt closing of empty comment", Fragment: t.fragmentAt(pos)}
		default:
			t.state = stateComment
			return false, nil
		}

	case stateComment:
		switch ch {
		case '<':
			t.state = stateCommentLessThanSign
		case '-':
			t.state = stateCommentEndDash
		}

	case stateCommentLessThanSign:
		switch ch {
		case '!':
			t.state = stateCommentLessThanSignBang
		case '<':
		default:
			t.state = stateComment
			return false, nil
		}

	case stateCommentLessThanSignBang:
		if ch == '-' {
			t.state = stateCommentLessThanSignBangDash
		} else {
			t.state = stateComment
			return false, nil
		}

	case stateCommentLessThanSignBangDash:
		if ch == '-' {
			t.state = stateCommentLessThanSignBangDashDash
		} else {
			t.state = stateCommentEndDash
			return false, nil
		}

	case stateCommentLessThanSignBangDashDash:
		if ch != '>' {
			return false, &LexicalError{Cause: "nested comment", Fragment: t.fragmentAt(pos)}
		}
		t.state = stateCommentEnd
		return false, nil

	case stateCommentEndDash:
		if ch == '-' {
			t.state = stateCommentEnd
		} else {
			t.state = stateComment
			return false, nil
		}

	case stateCommentEnd:
		switch ch {
		case '>':
			t.state = stateData
		case '!':
			t.state = stateCommentEndBang
		case '-':
		default:
			t.state = stateComment
			return false, nil
		}

	case stateCommentEndBang:
		switch ch {
		case '-':
			t.state = stateCommentEndDash
		case '>':
			return false, &LexicalError{Cause: "comment incorrectly closed", Fragment: t.fragmentAt(pos)}
		default:
			t.state = stateComment
			return false, nil
		}

	case stateRawText:
		if ch == '<' {
			t.state = stateRawTextLessThanSign
		}

	case stateRawTextLessThanSign:
		switch {
		case ch == '/':
			t.endTag = t.endTag[:0]
			t.state = stateRawTextEndTagOpen
		case ch == '!' && t.element == "script":
			return false, &UnsupportedConstructError{Construct: "script data escape sequence", Fragment: t.fragmentAt(pos)}
		default:
			t.state = stateRawText
			return false, nil
		}

	case stateRawTextEndTagOpen:
		if isASCIILetter(ch) {
			t.state = stateRawTextEndTagName
			return false, nil
		}
		t.state = stateRawText
		return false, nil

	case stateRawTextEndTagName:
		if isASCIILetter(ch) {
			t.endTag = append(t.endTag, toLower(ch))
			break
		}
		// Only the exact name of the open element is an appropriate end
		// tag; anything else stays ordinary raw-text content.
		if string(t.endTag) != t.element {
			t.state = stateRawText
			return false, nil
		}
		switch {
		case isWhitespace(ch):
			t.opening = false
			t.state = stateBeforeAttributeName
		case ch == '/':
			t.opening = false
			t.state = stateSelfClosingStartTag
		case ch == '>':
			t.opening = false
			t.state = t.closeTag()
		default:
			t.state = stateRawText
			return false, nil
		}
	}
	return true, nil
}

// closeTag selects the tokenizer for the content that follows a completed
// tag. The raw-text tokenizer is chosen at the moment a raw-text-named tag
// closes, so a self-closed <script/> still flips to raw text until its end
// tag appears.
func (t *tokenizer) closeTag() state {
	if t.opening && isRawTextElement(string(t.tag)) {
		t.element = string(t.tag)
		return stateRawText
	}
	t.element = ""
	return stateData
}

// lastSlot reports the slot index of the most recent value step.
func (t *tokenizer) lastSlot() int {
	for i := len(t.steps) - 1; i >= 0; i-- {
		if t.steps[i].kind != stepRaw {
			return t.steps[i].slot
		}
	}
	return 0
}

// fragmentAt excerpts the markup surrounding an offending character.
func (t *tokenizer) fragmentAt(pos int) string {
	start := pos - 20
	if start < 0 {
		start = 0
	}
	end := pos + 1
	if end > len(t.raw) {
		end = len(t.raw)
	}
	return string(t.raw[start:end])
}

func isDelimiter(ch byte) bool {
	return isWhitespace(ch) || ch == '/' || ch == '>'
}

func snippet(chunk string) string {
	if len(chunk) > 20 {
		return chunk[:20]
	}
	return chunk
}
