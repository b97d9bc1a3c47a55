package configdrive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Entry is a single file of the staged drive: a path relative to the
// drive root and the exact bytes to store there.
type Entry struct {
	Path string
	Data []byte
}

// MetadataProvider supplies the files an instance metadata service wants
// on the config drive.
type MetadataProvider interface {
	MetadataForConfigDrive() []Entry
}

// Builder accumulates config drive entries and stages them under a
// target directory. A Builder owns its entry list and any image file it
// is told about; it must not be shared between goroutines.
type Builder struct {
	imageFile string
	entries   []Entry
}

// NewBuilder creates a Builder, optionally pre-populated with entries.
func NewBuilder(seed ...Entry) *Builder {
	b := &Builder{}
	b.AddEntries(seed...)
	return b
}

// AddEntries appends entries in order. May be called any number of times
// before Write.
func (b *Builder) AddEntries(entries ...Entry) {
	b.entries = append(b.entries, entries...)
}

// AddMetadata appends all entries supplied by the provider.
func (b *Builder) AddMetadata(provider MetadataProvider) {
	if provider == nil {
		return
	}
	b.AddEntries(provider.MetadataForConfigDrive()...)
}

// Entries returns the accumulated entries in insertion order.
func (b *Builder) Entries() []Entry {
	return b.entries
}

// Write stages every entry under targetDir, creating intermediate
// directories as needed and overwriting existing files. On failure the
// files written so far are left in place; nothing is rolled back.
func (b *Builder) Write(targetDir string) error {
	for _, entry := range b.entries {
		if err := b.writeEntry(targetDir, entry); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writeEntry(targetDir string, entry Entry) error {
	filePath := filepath.Join(targetDir, entry.Path)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}
	if err := os.WriteFile(filePath, entry.Data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

// SetImageFile records the path of a drive image produced from the
// staged tree, making it subject to Cleanup.
func (b *Builder) SetImageFile(path string) {
	b.imageFile = path
}

// Cleanup removes the recorded image file if there is one. An image file
// that was never produced, or is already gone, is not an error; Cleanup
// may be called any number of times.
func (b *Builder) Cleanup() error {
	if b.imageFile == "" {
		return nil
	}
	if err := os.Remove(b.imageFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove image file %s: %w", b.imageFile, err)
	}
	return nil
}

// WithBuilder runs fn with a fresh Builder seeded from the provider and
// cleans up afterwards, unless fn failed: then the cleanup is skipped so
// the original error is not masked and any artifacts remain on disk for
// diagnosis.
func WithBuilder(provider MetadataProvider, fn func(*Builder) error) error {
	b := NewBuilder()
	b.AddMetadata(provider)
	if err := fn(b); err != nil {
		log.WithError(err).Debug("Keeping config drive artifacts for diagnosis")
		return err
	}
	return b.Cleanup()
}
