package hypertext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
)

func noopRenderer(w *hypertext.EscapeWriter, value any) error {
	return nil
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := hypertext.NewRegistry()
	if err := registry.RegisterContent("", noopRenderer); err != nil {
		t.Fatalf("first registration returned error: %v", err)
	}
	if err := registry.RegisterContent("", noopRenderer); err == nil {
		t.Fatalf("duplicate registration succeeded, want error")
	}
	if err := registry.RegisterAttribute("", noopRenderer); err != nil {
		t.Fatalf("attribute registration returned error: %v", err)
	}
}

func TestRegistryRejectsNilArguments(t *testing.T) {
	registry := hypertext.NewRegistry()
	if err := registry.RegisterContent(nil, noopRenderer); err == nil {
		t.Fatalf("nil sample accepted, want error")
	}
	if err := registry.RegisterContent("", nil); err == nil {
		t.Fatalf("nil renderer accepted, want error")
	}
}

func TestRegistryTypeNamesSorted(t *testing.T) {
	registry := hypertext.NewRegistry()
	registry.MustRegisterContent("", noopRenderer)
	registry.MustRegisterContent(0, noopRenderer)
	registry.MustRegisterContent(0.0, noopRenderer)

	want := []string{"float64", "int", "string"}
	if diff := cmp.Diff(want, registry.ContentTypes()); diff != "" {
		t.Fatalf("ContentTypes mismatch (-want +got):\n%s", diff)
	}
	if got := registry.AttributeTypes(); len(got) != 0 {
		t.Fatalf("AttributeTypes = %v, want empty", got)
	}
}

func TestMustRegisterPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustRegisterContent did not panic on duplicate")
		}
	}()
	registry := hypertext.NewRegistry()
	registry.MustRegisterContent("", noopRenderer)
	registry.MustRegisterContent("", noopRenderer)
}
