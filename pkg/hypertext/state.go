package hypertext

// state identifies the tokenizer position within the reduced HTML5 state
// machine. The set mirrors the WHATWG tokenizer states needed to classify
// interpolation points in a fragment; document-level states (DOCTYPE,
// CDATA, script data escapes) are rejected instead of modelled.
type state int

const (
	stateData state = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag
	stateMarkupDeclarationOpen
	stateCommentStart
	stateCommentStartDash
	stateComment
	stateCommentLessThanSign
	stateCommentLessThanSignBang
	stateCommentLessThanSignBangDash
	stateCommentLessThanSignBangDashDash
	stateCommentEndDash
	stateCommentEnd
	stateCommentEndBang
	stateRawText
	stateRawTextLessThanSign
	stateRawTextEndTagOpen
	stateRawTextEndTagName
)

// describe names the lexical position a state represents, for diagnostics.
func (s state) describe() string {
	switch s {
	case stateData:
		return "content"
	case stateTagOpen, stateEndTagOpen:
		return "tag open"
	case stateTagName:
		return "tag name"
	case stateBeforeAttributeName, stateAfterAttributeName:
		return "attribute list"
	case stateAttributeName:
		return "attribute name"
	case stateBeforeAttributeValue, stateAttributeValueUnquoted:
		return "unquoted attribute value"
	case stateAttributeValueDoubleQuoted, stateAttributeValueSingleQuoted:
		return "quoted attribute value"
	case stateAfterAttributeValueQuoted:
		return "after attribute value"
	case stateSelfClosingStartTag:
		return "self-closing tag"
	case stateMarkupDeclarationOpen:
		return "markup declaration"
	case stateCommentStart, stateCommentStartDash, stateComment,
		stateCommentLessThanSign, stateCommentLessThanSignBang,
		stateCommentLessThanSignBangDash, stateCommentLessThanSignBangDashDash,
		stateCommentEndDash, stateCommentEnd, stateCommentEndBang:
		return "comment"
	case stateRawText, stateRawTextLessThanSign,
		stateRawTextEndTagOpen, stateRawTextEndTagName:
		return "raw text"
	}
	return "unknown"
}

// rawTextElements lists the element names whose content is tokenized as raw
// text: markup-significant characters inside them are not parsed as tags.
var rawTextElements = map[string]struct{}{
	"style":    {},
	"xmp":      {},
	"iframe":   {},
	"noembed":  {},
	"noframes": {},
	"noscript": {},
	"script":   {},
}

func isRawTextElement(name string) bool {
	_, ok := rawTextElements[name]
	return ok
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\f':
		return true
	}
	return false
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
