package hypertext

import (
	"fmt"
	"io"
	"strings"
)

// Result is an assembled fragment: an ordered list of render steps plus a
// record of the originating input. It is immutable once built and may be
// rendered any number of times; concurrent renders are safe as long as each
// uses its own sink.
type Result struct {
	steps    []step
	parts    []Part
	registry *Registry
}

// Render executes the render steps in order against w, wrapped by the
// escape boundary. Rendering writes incrementally, so a failure partway
// through may leave partial output in the sink; callers needing atomicity
// should render into a buffer first (String does this).
func (r *Result) Render(w io.Writer) error {
	return r.render(NewEscapeWriter(w))
}

// String renders the fragment into a buffer and returns it only on a fully
// successful render.
func (r *Result) String() (string, error) {
	var buf strings.Builder
	if err := r.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Result) render(w *EscapeWriter) error {
	for _, s := range r.steps {
		var err error
		switch s.kind {
		case stepRaw:
			err = w.WriteTrusted(s.text)
		case stepContent:
			err = renderContent(w, s.value, r.registry, s.slot)
		case stepRawText:
			err = renderRawText(w, s.value, s.element, s.slot)
		case stepAttrValue:
			err = renderAttrValue(w, s.value, r.registry, s.slot)
		case stepAttrPair:
			err = renderAttrPair(w, s.name, s.value, r.registry, s.slot)
		case stepAttrSpread:
			err = renderAttrSpread(w, s.value, r.registry, s.slot)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Describe echoes the original input with values shown unevaluated, for
// introspection and debug display only. The output is not escaped and must
// never be used as markup.
func (r *Result) Describe() string {
	var b strings.Builder
	for _, part := range r.parts {
		if part.IsValue {
			fmt.Fprintf(&b, "${%v}", part.Value)
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
