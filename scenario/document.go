// Package scenario reads park scenario documents from YAML, JSON or TOML,
// validates them and builds ready-to-load adventure.Scenario values.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a scenario. Required numeric fields are
// pointers so a missing field can be told apart from a zero.
type Document struct {
	Name       string    `yaml:"name" toml:"name"`
	Background string    `yaml:"background" toml:"background"`
	Rules      *Rules    `yaml:"rules" toml:"rules"`
	Rides      []Ride    `yaml:"rides" toml:"rides"`
	Entrance   *Position `yaml:"entrance,omitempty" toml:"entrance,omitempty"`
}

// Rules are the park-wide limits.
type Rules struct {
	MaxGuests *int     `yaml:"max_guests" toml:"max_guests"`
	SpawnRate *float64 `yaml:"spawn_rate" toml:"spawn_rate"`
	TargetFPS *int     `yaml:"target_fps" toml:"target_fps"`
}

// Ride places one ride.
type Ride struct {
	Type        string    `yaml:"type" toml:"type"`
	Position    *Position `yaml:"position" toml:"position"`
	MaxCapacity *int      `yaml:"max_capacity" toml:"max_capacity"`
	RideTime    *float64  `yaml:"ride_time" toml:"ride_time"`
}

// Position is a world position. Z, when present, lifts the entity off the
// ground plane.
type Position struct {
	X *float64 `yaml:"x" toml:"x"`
	Y *float64 `yaml:"y" toml:"y"`
	Z *float64 `yaml:"z,omitempty" toml:"z,omitempty"`
}

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported scenario file extension %q", filepath.Ext(path))
	}
}

// Load reads and parses the scenario document at path. It does not
// validate; call Validate or Build.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatYAML, FormatJSON:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, err
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown field %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return doc, nil
}
