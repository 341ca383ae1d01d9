// Package config holds the build configuration of one conversion run.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Reading directions accepted by the spine's page-progression-direction.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Defaults applied when neither a flag nor a metadata file supplies a value.
const (
	DefaultTitle            = "Unknown Title"
	DefaultAuthor           = "Unknown Author"
	DefaultCompressionLevel = 9
)

// BuildConfig describes one EPUB build. It is assembled once from the
// command line and not modified while the archive is written.
type BuildConfig struct {
	Title            string
	Author           string
	BookID           string // URI-style unique identifier, e.g. urn:uuid:...
	Direction        string // ltr or rtl
	Subjects         []string
	CompressionLevel int
	InputDir         string
	OutputPath       string

	// Modified is the dcterms:modified stamp shared by every document of the run.
	Modified time.Time
}

// Default returns a configuration carrying the stock defaults and a freshly
// generated random identifier. Two calls never share an identifier.
func Default() *BuildConfig {
	return &BuildConfig{
		Title:            DefaultTitle,
		Author:           DefaultAuthor,
		BookID:           NewBookID(),
		Direction:        DirectionLTR,
		Subjects:         []string{},
		CompressionLevel: DefaultCompressionLevel,
		Modified:         time.Now().UTC(),
	}
}

// NewBookID returns a random urn:uuid identifier.
func NewBookID() string {
	return "urn:uuid:" + uuid.New().String()
}

// NormalizeDirection maps anything other than "rtl" to "ltr".
// Unknown values are accepted silently for compatibility with older callers.
func NormalizeDirection(dir string) string {
	if dir == DirectionRTL {
		return DirectionRTL
	}
	return DirectionLTR
}

// Validate checks the fields that have no usable default.
func (c *BuildConfig) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

// Metadata is the optional YAML file that pre-fills book metadata.
// Pointer fields distinguish "absent" from "set to zero".
type Metadata struct {
	Title     string   `yaml:"title"`
	Author    string   `yaml:"author"`
	ID        string   `yaml:"id"`
	Direction string   `yaml:"direction"`
	Subjects  []string `yaml:"subjects"`
	Level     *int     `yaml:"level"`
}

// LoadMetadataFile parses a YAML metadata file.
func LoadMetadataFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("malformed metadata file %s: %w", path, err)
	}
	return &m, nil
}

// Merge copies every non-empty value of m over the configuration.
func (c *BuildConfig) Merge(m *Metadata) {
	if m == nil {
		return
	}
	if v := strings.TrimSpace(m.Title); v != "" {
		c.Title = v
	}
	if v := strings.TrimSpace(m.Author); v != "" {
		c.Author = v
	}
	if v := strings.TrimSpace(m.ID); v != "" {
		c.BookID = v
	}
	if m.Direction != "" {
		c.Direction = NormalizeDirection(strings.TrimSpace(m.Direction))
	}
	if len(m.Subjects) > 0 {
		c.Subjects = append([]string{}, m.Subjects...)
	}
	if m.Level != nil {
		c.CompressionLevel = *m.Level
	}
}
