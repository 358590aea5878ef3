// Package hypertext renders HTML fragments from an interleaved sequence of
// literal markup chunks and interpolated values. A reduced HTML5 tokenizer
// scans the literal chunks and classifies every value slot by the lexical
// position it occupies (element content, raw-text content, attribute value,
// or attribute list), so each value is escaped or serialized correctly
// without the caller reasoning about markup syntax.
//
// Positions where interpolation would be unsafe or ambiguous (comments, tag
// names, a second value in an unquoted attribute) are rejected while the
// fragment is built. Unsupported constructs (DOCTYPE, CDATA, processing
// instructions, script data escapes) are rejected outright rather than
// approximated.
package hypertext

import "strings"

// Part is one element of the input sequence: either a literal markup chunk
// or an interpolated value. Use Text and Value to construct parts; the zero
// Part is an empty literal and is discarded during Build.
type Part struct {
	Text    string
	Value   any
	IsValue bool
}

// Text returns a literal markup part. Literal text is trusted: it is emitted
// verbatim once the tokenizer has validated it.
func Text(text string) Part {
	return Part{Text: text}
}

// Value returns an interpolated value part. The value is classified by the
// position it occupies and rendered through the escaping rules for that
// position.
func Value(value any) Part {
	return Part{Value: value, IsValue: true}
}

// Interleave builds the part sequence for a template split around its
// interpolation points: literals[0], values[0], literals[1], values[1], ...
// Trailing literals without a matching value are appended as-is.
func Interleave(literals []string, values ...any) []Part {
	parts := make([]Part, 0, len(literals)+len(values))
	for i, literal := range literals {
		parts = append(parts, Text(literal))
		if i < len(values) {
			parts = append(parts, Value(values[i]))
		}
	}
	for i := len(literals); i < len(values); i++ {
		parts = append(parts, Value(values[i]))
	}
	return parts
}

// Option customises Build behaviour.
type Option func(*buildConfig)

type buildConfig struct {
	registry *Registry
}

// WithRegistry attaches a custom value renderer registry to the result.
// Registered renderers take precedence over the built-in value handling for
// their types.
func WithRegistry(registry *Registry) Option {
	return func(cfg *buildConfig) {
		cfg.registry = registry
	}
}

// Build tokenizes the part sequence and assembles an immutable Result.
// Literal chunks are newline-normalized (\r\n and \r become \n) and empty
// chunks are discarded before tokenizing. Classification failures are
// reported immediately; value rendering failures surface when the result is
// rendered.
func Build(parts []Part, opts ...Option) (*Result, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := newTokenizer()
	slot := 0
	for _, part := range parts {
		if part.IsValue {
			if err := t.feedValue(part.Value, slot); err != nil {
				return nil, err
			}
			slot++
			continue
		}
		text := normalizeNewlines(part.Text)
		if text == "" {
			continue
		}
		if err := t.feedLiteral(text); err != nil {
			return nil, err
		}
	}
	t.flushRaw()

	return &Result{
		steps:    t.steps,
		parts:    append([]Part(nil), parts...),
		registry: cfg.registry,
	}, nil
}

func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
