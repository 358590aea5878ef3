package hypertext_test

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
)

func TestSanitizeUGC(t *testing.T) {
	dirty := `<b>bold</b><script>alert(1)</script><a href="http://x" onclick="p()">x</a>`
	clean := string(hypertext.SanitizeUGC(dirty))

	if !strings.Contains(clean, "<b>bold</b>") {
		t.Fatalf("formatting stripped from %q", clean)
	}
	if strings.Contains(clean, "<script") || strings.Contains(clean, "onclick") {
		t.Fatalf("active content survived sanitization: %q", clean)
	}
}

func TestSanitizeWithPolicy(t *testing.T) {
	policy := bluemonday.StrictPolicy()
	got := hypertext.Sanitize(policy, "<em>x</em> & y")
	if want := hypertext.Trusted("x &amp; y"); got != want {
		t.Fatalf("Sanitize = %q, want %q", got, want)
	}
}

func TestSanitizedValueInterpolatesTrusted(t *testing.T) {
	clean := hypertext.SanitizeUGC("<b>hi</b>")
	got := renderParts(t, hypertext.Interleave(
		[]string{"<p>", "</p>"}, clean,
	))
	if want := "<p><b>hi</b></p>"; got != want {
		t.Fatalf("rendered fragment = %q, want %q", got, want)
	}
}
