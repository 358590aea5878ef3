package hypertext

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Attr is an ordered attribute name/value pair. A single Attr or a []Attr
// can be spread into a tag's attribute list when map ordering is not
// deterministic enough, and both also serve as style-like declaration pairs
// inside attribute values.
type Attr struct {
	Name  string
	Value any
}

// NormalizeName folds a mapping key into attribute-name form: one leading
// underscore is stripped, underscores become hyphens, and ASCII letters are
// lowercased. Literal attribute names in template text are never rewritten;
// normalization applies to keys supplied through mappings and pairs.
func NormalizeName(name string) string {
	name = strings.TrimPrefix(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch == '_' {
			ch = '-'
		}
		b.WriteByte(toLower(ch))
	}
	return b.String()
}

// ValidateName checks a name against the attribute-name grammar: non-empty
// and free of / > = ' < & % \ and whitespace or control characters.
func ValidateName(name string) error {
	return validateName(name)
}

func validateName(name string) error {
	if name == "" {
		return &InvalidAttributeNameError{Name: name}
	}
	for i := 0; i < len(name); i++ {
		switch ch := name[i]; {
		case ch == '/' || ch == '>' || ch == '=' || ch == '\'' || ch == '<' || ch == '&' || ch == '%' || ch == '\\':
			return &InvalidAttributeNameError{Name: name}
		case isWhitespace(ch) || ch < 0x20 || ch == 0x7f:
			return &InvalidAttributeNameError{Name: name}
		}
	}
	return nil
}

// renderAttrPair serializes one whole attribute: nothing for false or nil,
// a bare ` name=''` for true, and ` name='…'` with the escaped rendered
// value otherwise. The leading space keeps concatenated pairs well-formed.
func renderAttrPair(w *EscapeWriter, name string, value any, registry *Registry, slot int) error {
	if value == nil {
		return nil
	}
	if flag, ok := value.(bool); ok {
		if !flag {
			return nil
		}
		return w.WriteTrusted(" " + name + "=''")
	}
	if err := w.WriteTrusted(" " + name + "='"); err != nil {
		return err
	}
	if err := renderAttrValue(w, value, registry, slot); err != nil {
		return err
	}
	return w.WriteTrusted("'")
}

// renderAttrSpread serializes an attribute mapping spread into a tag. Map
// entries are emitted in sorted key order; Attr slices keep their order.
// Keys pass through normalization and validation; omitted attributes
// contribute nothing.
func renderAttrSpread(w *EscapeWriter, value any, registry *Registry, slot int) error {
	emit := func(name string, v any) error {
		name = NormalizeName(name)
		if err := validateName(name); err != nil {
			return err
		}
		return renderAttrPair(w, name, v, registry, slot)
	}

	switch v := value.(type) {
	case Attr:
		return emit(v.Name, v.Value)
	case []Attr:
		for _, attr := range v {
			if err := emit(attr.Name, attr.Value); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for _, key := range sortedKeys(v) {
			if err := emit(key, v[key]); err != nil {
				return err
			}
		}
		return nil
	case map[string]string:
		for _, key := range sortedKeys(v) {
			if err := emit(key, v[key]); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("hypertext: value %d: attribute spread requires a mapping, Attr, or []Attr, got %T", slot, value)
}

// renderAttrValue renders a value occupying (part of) an attribute value.
// Booleans are rejected; sequences join with single spaces; pair-like
// values render as CSS declarations; everything else falls back to the
// scalar text form, escaped.
func renderAttrValue(w *EscapeWriter, value any, registry *Registry, slot int) error {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		return &BooleanInQuotedContextError{Slot: slot}
	case Trusted:
		return w.WriteTrusted(string(v))
	case Attr:
		return renderDeclaration(w, v.Name, v.Value, registry, slot)
	case []Attr:
		if len(v) > 0 {
			for _, pair := range v {
				if err := renderDeclaration(w, pair.Name, pair.Value, registry, slot); err != nil {
					return err
				}
			}
			return nil
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			if err := renderDeclaration(w, key, v[key], registry, slot); err != nil {
				return err
			}
		}
		return nil
	case map[string]string:
		for _, key := range sortedKeys(v) {
			if err := renderDeclaration(w, key, v[key], registry, slot); err != nil {
				return err
			}
		}
		return nil
	}

	if registry != nil {
		if renderer, ok := registry.attributeFor(reflect.TypeOf(value)); ok {
			return renderer(w, value)
		}
	}
	if text, ok := scalarText(value); ok {
		return w.WriteString(text)
	}

	first := true
	handled, err := eachItem(value, func(item any) error {
		if !first {
			if err := w.WriteTrusted(" "); err != nil {
				return err
			}
		}
		first = false
		return renderAttrValue(w, item, registry, slot)
	})
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	return fmt.Errorf("hypertext: value %d: no attribute rendering for %T; register a renderer", slot, value)
}

// renderDeclaration emits one `name: value;` declaration, normalizing and
// validating the name.
func renderDeclaration(w *EscapeWriter, name string, value any, registry *Registry, slot int) error {
	name = NormalizeName(name)
	if err := validateName(name); err != nil {
		return err
	}
	if err := w.WriteString(name + ": "); err != nil {
		return err
	}
	if err := renderAttrValue(w, value, registry, slot); err != nil {
		return err
	}
	return w.WriteString(";")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
