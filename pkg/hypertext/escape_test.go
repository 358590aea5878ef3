package hypertext_test

import (
	stdhtml "html"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
)

func TestEscapeWriterWriteString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "hello world", want: "hello world"},
		{name: "all significant characters", input: `&<>"'`, want: "&amp;&lt;&gt;&#34;&#39;"},
		{name: "mixed", input: `a < b && c > "d"`, want: "a &lt; b &amp;&amp; c &gt; &#34;d&#34;"},
		{name: "empty", input: "", want: ""},
		{name: "multibyte passes through", input: "héllo ☃", want: "héllo ☃"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			w := hypertext.NewEscapeWriter(&buf)
			if err := w.WriteString(tt.input); err != nil {
				t.Fatalf("WriteString returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Fatalf("escaped output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEscapeWriterRoundTrip(t *testing.T) {
	inputs := []string{
		"Strunk & White",
		`<script>alert("1")</script>`,
		`it's a 'quoted' "string" <with> &entities;`,
	}

	for _, input := range inputs {
		var buf strings.Builder
		if err := hypertext.NewEscapeWriter(&buf).WriteString(input); err != nil {
			t.Fatalf("WriteString returned error: %v", err)
		}
		if got := stdhtml.UnescapeString(buf.String()); got != input {
			t.Fatalf("round trip mismatch: unescape(%q) = %q, want %q", buf.String(), got, input)
		}
	}
}

func TestEscapeWriterWriteTrusted(t *testing.T) {
	var buf strings.Builder
	w := hypertext.NewEscapeWriter(&buf)
	if err := w.WriteTrusted(`<b class="x">`); err != nil {
		t.Fatalf("WriteTrusted returned error: %v", err)
	}
	if got, want := buf.String(), `<b class="x">`; got != want {
		t.Fatalf("trusted output = %q, want %q", got, want)
	}
}
