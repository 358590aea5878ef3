package placeholder_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
	"github.com/goliatone/go-hypertext/pkg/placeholder"
)

func render(t *testing.T, parts []hypertext.Part) string {
	t.Helper()
	result, err := hypertext.Build(parts)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	out, err := result.String()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]any
		want     string
	}{
		{
			name:     "single placeholder in content",
			template: "<h1>{title}</h1>",
			values:   map[string]any{"title": "A & B"},
			want:     "<h1>A &amp; B</h1>",
		},
		{
			name:     "placeholder as attribute value",
			template: `<a href="{url}">{label}</a>`,
			values:   map[string]any{"url": "/x?a=1&b=2", "label": "go"},
			want:     `<a href="/x?a=1&amp;b=2">go</a>`,
		},
		{
			name:     "unquoted attribute placeholder",
			template: "<input checked={checked}>",
			values:   map[string]any{"checked": false},
			want:     "<input>",
		},
		{
			name:     "escaped braces stay literal",
			template: "<code>{{x}} is {x}</code>",
			values:   map[string]any{"x": 1},
			want:     "<code>{x} is 1</code>",
		},
		{
			name:     "repeated placeholder",
			template: "<p>{n} and {n}</p>",
			values:   map[string]any{"n": 2},
			want:     "<p>2 and 2</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := placeholder.Split(tt.template, tt.values)
			if err != nil {
				t.Fatalf("Split returned error: %v", err)
			}
			got := render(t, parts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("rendered template mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitMissingValues(t *testing.T) {
	_, err := placeholder.Split("<p>{b} {a} {b}</p>", map[string]any{})
	if err == nil {
		t.Fatalf("Split succeeded, want missing values error")
	}
	if got := err.Error(); !strings.Contains(got, "a, b") {
		t.Fatalf("error %q does not list missing names sorted", got)
	}
}

func TestSplitSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{name: "unterminated placeholder", template: "<p>{title"},
		{name: "stray closing brace", template: "<p>}</p>"},
		{name: "empty name", template: "<p>{}</p>"},
		{name: "invalid name", template: "<p>{a b}</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := placeholder.Split(tt.template, nil); err == nil {
				t.Fatalf("Split(%q) succeeded, want error", tt.template)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names, err := placeholder.Names("<p>{b} {a} {{c}} {b}</p>")
	if err != nil {
		t.Fatalf("Names returned error: %v", err)
	}
	want := []string{"b", "a"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument(t *testing.T) {
	raw := []byte(`
template: "<a href=\"{url}\">{label}</a>"
values:
  url: /home
  label: Home & Garden
`)
	doc, err := placeholder.LoadDocument(raw)
	if err != nil {
		t.Fatalf("LoadDocument returned error: %v", err)
	}

	parts, err := doc.Parts()
	if err != nil {
		t.Fatalf("Parts returned error: %v", err)
	}
	got := render(t, parts)
	if want := `<a href="/home">Home &amp; Garden</a>`; got != want {
		t.Fatalf("rendered document = %q, want %q", got, want)
	}
}

func TestDocumentMissingNames(t *testing.T) {
	doc := &placeholder.Document{
		Template: "<p>{a} {b}</p>",
		Values:   map[string]any{"a": 1},
	}
	missing, err := doc.MissingNames()
	if err != nil {
		t.Fatalf("MissingNames returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, missing); diff != "" {
		t.Fatalf("MissingNames mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocumentRejectsEmptyTemplate(t *testing.T) {
	if _, err := placeholder.LoadDocument([]byte("values: {}")); err == nil {
		t.Fatalf("LoadDocument succeeded on a document without a template")
	}
}
