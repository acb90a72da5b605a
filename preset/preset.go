// Package preset persists named print configurations: layout plus
// printer options, loaded at startup and written back on every edit.
//
// Presets live in a single YAML file, by default ~/.manualpress-presets.yaml.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	manualpress "github.com/manualpress/manualpress"
)

// Preset is one named print configuration.
type Preset struct {
	// Layout.
	Sheet       string  `mapstructure:"sheet" yaml:"sheet"`
	PerSheet    int     `mapstructure:"per_sheet" yaml:"per_sheet"`
	Orientation string  `mapstructure:"orientation" yaml:"orientation"`
	MarginOuter float64 `mapstructure:"margin_outer" yaml:"margin_outer"`
	Gutter      float64 `mapstructure:"gutter" yaml:"gutter"`

	// Printer options.
	Printer string `mapstructure:"printer" yaml:"printer"`
	Duplex  bool   `mapstructure:"duplex" yaml:"duplex"`
	Color   bool   `mapstructure:"color" yaml:"color"`
	Copies  int    `mapstructure:"copies" yaml:"copies"`
	Pages   string `mapstructure:"pages" yaml:"pages"`
}

// LayoutSpec converts the preset's layout fields. Empty fields fall
// back to the library defaults.
func (p Preset) LayoutSpec() (manualpress.LayoutSpec, error) {
	spec := manualpress.LayoutSpec{
		PerSheet:    p.PerSheet,
		MarginOuter: p.MarginOuter,
		GutterX:     p.Gutter,
		GutterY:     p.Gutter,
	}

	if p.Sheet != "" {
		size, ok := manualpress.SheetSizeByName(p.Sheet)
		if !ok {
			return manualpress.LayoutSpec{}, fmt.Errorf("preset: unknown sheet size %q", p.Sheet)
		}
		spec.Sheet = size
	}

	switch strings.ToLower(p.Orientation) {
	case "", "portrait":
	case "landscape":
		spec.Orientation = manualpress.Landscape
	default:
		return manualpress.LayoutSpec{}, fmt.Errorf("preset: unknown orientation %q", p.Orientation)
	}

	return spec, nil
}

// Store is a preset collection bound to a file.
type Store struct {
	fs      afero.Fs
	path    string
	presets map[string]Preset
}

// Open loads the preset file at path. A missing file yields an empty
// store; it is created on the first edit.
func Open(path string) (*Store, error) {
	return openFS(afero.NewOsFs(), path)
}

func openFS(fs afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fs, path: path, presets: make(map[string]Preset)}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("preset: checking %s: %w", path, err)
	}
	if !exists {
		return s, nil
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("preset: reading %s: %w", path, err)
	}
	if err := v.UnmarshalKey("presets", &s.presets); err != nil {
		return nil, fmt.Errorf("preset: parsing %s: %w", path, err)
	}
	return s, nil
}

// Names returns the preset names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the preset with the given name.
func (s *Store) Get(name string) (Preset, bool) {
	p, ok := s.presets[name]
	return p, ok
}

// Set adds or replaces a preset and writes the store back to disk.
func (s *Store) Set(name string, p Preset) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("preset: empty preset name")
	}
	s.presets[name] = p
	return s.save()
}

// Delete removes a preset and writes the store back to disk.
func (s *Store) Delete(name string) error {
	if _, ok := s.presets[name]; !ok {
		return fmt.Errorf("preset: no preset named %q", name)
	}
	delete(s.presets, name)
	return s.save()
}

func (s *Store) save() error {
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.Set("presets", s.presets)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("preset: writing %s: %w", s.path, err)
	}
	return nil
}

// DefaultPath returns the preset file location in the user's home
// directory, or a relative fallback when the home cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".manualpress-presets.yaml"
	}
	return filepath.Join(home, ".manualpress-presets.yaml")
}
