package configdrive

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ManifestEntry describes one drive file in a manifest. Exactly one of
// Content (inline data) and Source (path of a file to read) must be set.
type ManifestEntry struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content,omitempty"`
	Source  string `yaml:"source,omitempty"`
}

// Manifest is a YAML description of the files to stage on a config
// drive. It implements MetadataProvider.
type Manifest struct {
	Entries []ManifestEntry `yaml:"entries"`

	// relative Source paths resolve against the manifest's directory
	baseDir string
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	manifest := &Manifest{baseDir: filepath.Dir(path)}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	for i, entry := range manifest.Entries {
		if entry.Path == "" {
			return nil, fmt.Errorf("manifest %s: entry %d has no path", path, i)
		}
		if (entry.Content == "") == (entry.Source == "") {
			return nil, fmt.Errorf("manifest %s: entry %q needs exactly one of content and source", path, entry.Path)
		}
	}

	return manifest, nil
}

// MetadataForConfigDrive resolves the manifest entries to raw drive
// entries. Entries whose source file cannot be read are omitted; use
// Resolve when that has to be an error.
func (m *Manifest) MetadataForConfigDrive() []Entry {
	entries, err := m.Resolve()
	if err != nil {
		log.WithError(err).Warn("Skipping unreadable config drive entries")
	}
	return entries
}

// Resolve turns the manifest into drive entries, failing if any source
// file cannot be read.
func (m *Manifest) Resolve() ([]Entry, error) {
	entries := make([]Entry, 0, len(m.Entries))
	for _, me := range m.Entries {
		if me.Content != "" {
			entries = append(entries, Entry{Path: me.Path, Data: []byte(me.Content)})
			continue
		}
		source := me.Source
		if !filepath.IsAbs(source) {
			source = filepath.Join(m.baseDir, source)
		}
		data, err := os.ReadFile(source)
		if err != nil {
			return entries, fmt.Errorf("failed to read source of entry %q: %w", me.Path, err)
		}
		entries = append(entries, Entry{Path: me.Path, Data: data})
	}
	return entries, nil
}
