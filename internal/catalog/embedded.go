// Embedded default catalog. go:embed bakes the built-in templates into the
// binary so generation works with no files on disk.
package catalog

import (
	"embed"
	"fmt"
)

//go:embed templates
var embeddedTemplates embed.FS

// LoadEmbedded parses the built-in catalog baked into the binary.
func LoadEmbedded() (*File, error) {
	data, err := embeddedTemplates.ReadFile("templates/templates.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return f, nil
}
