package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a batch run: which documents to score and how.
type Manifest struct {
	OutputDir string          `yaml:"output_dir"`
	Workers   int             `yaml:"workers"`
	Documents []ManifestEntry `yaml:"documents"`
}

type ManifestEntry struct {
	Path string `yaml:"path"`
}

// LoadManifest reads a YAML manifest. Relative document paths are
// resolved against the manifest's own directory.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Documents) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s lists no documents", path)
	}
	base := filepath.Dir(path)
	for i, doc := range m.Documents {
		if doc.Path == "" {
			return Manifest{}, fmt.Errorf("manifest %s: document %d has no path", path, i)
		}
		if !filepath.IsAbs(doc.Path) {
			m.Documents[i].Path = filepath.Join(base, doc.Path)
		}
	}
	return m, nil
}

// Paths returns the document paths in manifest order.
func (m Manifest) Paths() []string {
	paths := make([]string, len(m.Documents))
	for i, doc := range m.Documents {
		paths[i] = doc.Path
	}
	return paths
}
