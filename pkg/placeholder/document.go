package placeholder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-hypertext/pkg/hypertext"
)

// Document is a YAML-declared fragment: a placeholder template plus the
// values to fill it with.
type Document struct {
	Template string         `yaml:"template"`
	Values   map[string]any `yaml:"values"`
}

// LoadDocument decodes a document from YAML bytes.
func LoadDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("placeholder: decode document: %w", err)
	}
	if doc.Template == "" {
		return nil, fmt.Errorf("placeholder: document has no template")
	}
	return &doc, nil
}

// LoadDocumentFile reads and decodes a document from path.
func LoadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("placeholder: read document: %w", err)
	}
	return LoadDocument(data)
}

// Parts resolves the document template against its values.
func (d *Document) Parts() ([]hypertext.Part, error) {
	return Split(d.Template, d.Values)
}

// MissingNames returns the placeholder names the document's values do not
// cover, in template order.
func (d *Document) MissingNames() ([]string, error) {
	names, err := Names(d.Template)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, name := range names {
		if _, ok := d.Values[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
