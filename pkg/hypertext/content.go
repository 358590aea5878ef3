package hypertext

import (
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"
)

// Markuper is the extensibility hook for content positions: a value that
// implements it supplies its own markup, writing through the escape
// boundary. Output written with WriteString is escaped; the implementation
// must use WriteTrusted deliberately for anything pre-escaped.
type Markuper interface {
	RenderMarkup(w *EscapeWriter) error
}

// renderContent renders a value interpolated in element content. Strings,
// numbers and Stringers render as their text form, escaped; nil renders as
// nothing; sequences concatenate with no separator; Trusted and nested
// results take the trusted path.
func renderContent(w *EscapeWriter, value any, registry *Registry, slot int) error {
	switch v := value.(type) {
	case nil:
		return nil
	case Trusted:
		return w.WriteTrusted(string(v))
	case *Result:
		return v.render(w)
	}

	if registry != nil {
		if renderer, ok := registry.contentFor(reflect.TypeOf(value)); ok {
			return renderer(w, value)
		}
	}
	if markuper, ok := value.(Markuper); ok {
		return markuper.RenderMarkup(w)
	}
	if text, ok := scalarText(value); ok {
		return w.WriteString(text)
	}

	handled, err := eachItem(value, func(item any) error {
		return renderContent(w, item, registry, slot)
	})
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	return fmt.Errorf("hypertext: value %d: no content rendering for %T; implement Markuper or register a renderer", slot, value)
}

// renderRawText renders a value inside a raw-text element. Escaping does
// not apply there, so the rendered text is checked instead: it may not
// contain the element's closing tag (case-insensitive), nor <!-- when the
// element is script.
func renderRawText(w *EscapeWriter, value any, element string, slot int) error {
	var buf strings.Builder
	if err := rawText(&buf, value, slot); err != nil {
		return err
	}
	text := buf.String()
	lower := strings.ToLower(text)
	if closing := "</" + element + ">"; strings.Contains(lower, closing) {
		return &RawTextContentViolationError{Slot: slot, Element: element, Forbidden: closing}
	}
	if element == "script" && strings.Contains(lower, "<!--") {
		return &RawTextContentViolationError{Slot: slot, Element: element, Forbidden: "<!--"}
	}
	return w.WriteTrusted(text)
}

func rawText(buf *strings.Builder, value any, slot int) error {
	switch v := value.(type) {
	case nil:
		return nil
	case Trusted:
		buf.WriteString(string(v))
		return nil
	}
	if text, ok := scalarText(value); ok {
		buf.WriteString(text)
		return nil
	}
	handled, err := eachItem(value, func(item any) error {
		return rawText(buf, item, slot)
	})
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	return fmt.Errorf("hypertext: value %d: no raw text rendering for %T", slot, value)
}

// scalarText converts the scalar value kinds to their text form.
func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// eachItem visits the elements of a sequence value in order. It reports
// whether the value was a sequence; slices, arrays and single-use iterators
// qualify, byte slices do not (they are text).
func eachItem(value any, visit func(any) error) (bool, error) {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if err := visit(item); err != nil {
				return true, err
			}
		}
		return true, nil
	case []string:
		for _, item := range v {
			if err := visit(item); err != nil {
				return true, err
			}
		}
		return true, nil
	case iter.Seq[any]:
		for item := range v {
			if err := visit(item); err != nil {
				return true, err
			}
		}
		return true, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return false, nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := visit(rv.Index(i).Interface()); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	return false, nil
}
