// internal/palette/palette.go
//
// Palette definitions for the game.
//
// Responsibilities:
//   - Load a board palette from an embedded definition or a YAML file.
//   - Validate entries (labels unique, hex colors well formed).
//   - Build the core game.Palette and keep display names/colors for rendering.
//
// Sources (Load):
//   1. "" → the embedded "default" palette (six colors, R V A M N L).
//   2. A name listed by assets.Names() → that embedded palette.
//   3. Anything else → treated as a path to a YAML file.
//
// File format:
//
//	name: mine
//	colors:
//	  - label: R
//	    name: red
//	    hex: "#FF0000"

package palette

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tomasrobino/mastermind/assets"
	"github.com/tomasrobino/mastermind/internal/game"
)

// DefaultName is the embedded palette used when nothing is configured.
const DefaultName = "default"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Entry is one color of a palette file.
type Entry struct {
	Label string `yaml:"label"`
	Name  string `yaml:"name"`
	Hex   string `yaml:"hex"`
}

// file is the YAML document shape.
type file struct {
	Name   string  `yaml:"name"`
	Colors []Entry `yaml:"colors"`
}

// Set is a loaded palette: the core symbols plus how to draw them.
type Set struct {
	Name    string
	Entries []Entry
	palette game.Palette
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default parses the embedded default palette exactly once.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = loadEmbedded(DefaultName)
	})
	return defaultSet, defaultErr
}

// Load resolves ref to an embedded palette or a YAML file (see package doc).
func Load(ref string) (*Set, error) {
	if ref == "" || ref == DefaultName {
		return Default()
	}
	if slices.Contains(assets.Names(), ref) {
		return loadEmbedded(ref)
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", ref, err)
	}
	return Parse(data)
}

func loadEmbedded(name string) (*Set, error) {
	data, err := assets.Palette(name)
	if err != nil {
		return nil, fmt.Errorf("embedded palette %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes and validates a palette document.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	return newSet(f.Name, f.Colors)
}

func newSet(name string, entries []Entry) (*Set, error) {
	labels := make([]string, len(entries))
	for i, e := range entries {
		if e.Hex != "" && !hexColor.MatchString(e.Hex) {
			return nil, fmt.Errorf("palette %s: color %q has bad hex %q", name, e.Label, e.Hex)
		}
		labels[i] = e.Label
	}
	p, err := game.NewPalette(labels...)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}
	return &Set{Name: name, Entries: append([]Entry(nil), entries...), palette: p}, nil
}

// Palette returns the core palette.
func (s *Set) Palette() game.Palette { return s.palette }

// Truncate keeps the first n colors. n <= 0 or n >= Len returns s unchanged.
func (s *Set) Truncate(n int) (*Set, error) {
	if n <= 0 || n >= len(s.Entries) {
		return s, nil
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: palette needs at least 2 colors, got %d", game.ErrConfiguration, n)
	}
	return newSet(s.Name, s.Entries[:n])
}

// Len is the number of colors.
func (s *Set) Len() int { return len(s.Entries) }

// Color returns the hex color for sym, or "" when none is set.
func (s *Set) Color(sym game.Symbol) string {
	if !s.palette.Contains(sym) {
		return ""
	}
	return s.Entries[sym].Hex
}

// DisplayName returns the long name for sym, falling back to its label.
func (s *Set) DisplayName(sym game.Symbol) string {
	if !s.palette.Contains(sym) {
		return "?"
	}
	if n := s.Entries[sym].Name; n != "" {
		return n
	}
	return s.Entries[sym].Label
}
