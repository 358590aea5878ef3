// Package placeholder layers a named-slot template syntax over hypertext
// fragments. Templates mark value positions with {name}; Split turns a
// template plus a value mapping into the interleaved parts the hypertext
// builder consumes, so the classification and escaping rules apply
// unchanged.
package placeholder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
)

// Split parses template and resolves each {name} placeholder against
// values, producing an interleaved part sequence. Doubled braces {{ and }}
// escape literal braces. Every placeholder must resolve; missing names are
// reported together in one error.
func Split(template string, values map[string]any) ([]hypertext.Part, error) {
	parts, names, err := parse(template)
	if err != nil {
		return nil, err
	}

	var missing []string
	reported := make(map[string]bool)
	for i, part := range parts {
		if !part.IsValue {
			continue
		}
		name := names[i]
		value, ok := values[name]
		if !ok {
			if !reported[name] {
				reported[name] = true
				missing = append(missing, name)
			}
			continue
		}
		parts[i] = hypertext.Value(value)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("placeholder: missing values for %s", strings.Join(missing, ", "))
	}
	return parts, nil
}

// Names returns each placeholder name in template, in order of first
// appearance.
func Names(template string) ([]string, error) {
	parts, names, err := parse(template)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var ordered []string
	for i, part := range parts {
		if !part.IsValue {
			continue
		}
		name := names[i]
		if !seen[name] {
			seen[name] = true
			ordered = append(ordered, name)
		}
	}
	return ordered, nil
}

// parse splits template into literal and placeholder parts. Placeholder
// parts come back as value parts with a nil value; names records the
// placeholder name at the matching index.
func parse(template string) ([]hypertext.Part, map[int]string, error) {
	var (
		parts   []hypertext.Part
		literal strings.Builder
	)
	names := make(map[int]string)

	for i := 0; i < len(template); {
		ch := template[i]
		switch ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				literal.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, nil, fmt.Errorf("placeholder: unterminated placeholder at offset %d", i)
			}
			name := template[i+1 : i+1+end]
			if err := validateName(name, i); err != nil {
				return nil, nil, err
			}
			if literal.Len() > 0 {
				parts = append(parts, hypertext.Text(literal.String()))
				literal.Reset()
			}
			names[len(parts)] = name
			parts = append(parts, hypertext.Value(nil))
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				literal.WriteByte('}')
				i += 2
				continue
			}
			return nil, nil, fmt.Errorf("placeholder: unexpected } at offset %d", i)
		default:
			literal.WriteByte(ch)
			i++
		}
	}
	if literal.Len() > 0 {
		parts = append(parts, hypertext.Text(literal.String()))
	}
	return parts, names, nil
}

func validateName(name string, offset int) error {
	if name == "" {
		return fmt.Errorf("placeholder: empty placeholder name at offset %d", offset)
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '_', ch == '-', ch == '.':
		default:
			return fmt.Errorf("placeholder: invalid placeholder name %q at offset %d", name, offset)
		}
	}
	return nil
}
