// Package recipe reads YAML descriptions of a background build and runs them.
//
// A recipe names a source image, optional margins and a list of steps:
//
//	image: photos/sunset.jpg
//	margins:
//	  hbratio: 0.25
//	  body: {left: 0.1, right: 0.1}
//	steps:
//	  - filter: {operation: blur, part: body, region: inner, value: 8}
//	  - overlay: {source: blank, part: header}
//	  - margins: exclude
//	  - image: {picture: logo.png, part: header, region: left}
//	save:
//	  name: sunset.png
//	  location: [out]
//
// Relative paths are resolved against the directory holding the recipe. A save
// section without a location writes next to the recipe unless a save
// directory is set.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/backdrop-mcp/internal/layout"
)

// Recipe is a parsed recipe file.
type Recipe struct {
	Image          string        `yaml:"image"`
	Margins        layout.Config `yaml:"margins,omitempty"`
	IncludeMargins *bool         `yaml:"include_margins,omitempty"`
	Steps          []Step        `yaml:"steps,omitempty"`
	Save           *SaveStep     `yaml:"save,omitempty"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Step holds exactly one action.
type Step struct {
	Filter  *FilterStep  `yaml:"filter,omitempty"`
	Overlay *OverlayStep `yaml:"overlay,omitempty"`
	Image   *ImageStep   `yaml:"image,omitempty"`
	Margins *string      `yaml:"margins,omitempty"`
}

// FilterStep runs a filter over a region. Operation defaults to "blur" and
// Value to the default blur radius.
type FilterStep struct {
	Operation string   `yaml:"operation,omitempty"`
	Part      string   `yaml:"part,omitempty"`
	Region    string   `yaml:"region,omitempty"`
	Value     *float64 `yaml:"value,omitempty"`
}

// OverlayStep lays a sheet or picture over a region. Color, when given, wins
// over Source. Source is "blank", a "#RRGGBB[AA]" colour or a picture path.
type OverlayStep struct {
	Source string `yaml:"source,omitempty"`
	Color  []int  `yaml:"color,omitempty"`
	Part   string `yaml:"part,omitempty"`
	Region string `yaml:"region,omitempty"`
}

// ImageStep places a picture inside a region.
type ImageStep struct {
	Picture      string `yaml:"picture"`
	Part         string `yaml:"part,omitempty"`
	Region       string `yaml:"region,omitempty"`
	Borders      string `yaml:"borders,omitempty"`
	Anchor       []int  `yaml:"anchor,omitempty"`
	Transparency *int   `yaml:"transparency,omitempty"`
}

// SaveStep names the output file. See background.Background.Save.
type SaveStep struct {
	Name     string   `yaml:"name,omitempty"`
	Location []string `yaml:"location,omitempty"`
}

// Actions returns the names of the actions set on s.
func (s Step) Actions() []string {
	var names []string
	if s.Filter != nil {
		names = append(names, "filter")
	}
	if s.Overlay != nil {
		names = append(names, "overlay")
	}
	if s.Image != nil {
		names = append(names, "image")
	}
	if s.Margins != nil {
		names = append(names, "margins")
	}
	return names
}

// Load reads the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.Dir = filepath.Dir(path)
	return r, nil
}

// Parse decodes a recipe. Unknown keys are rejected so that typos in step
// names do not silently drop a step.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty recipe")
		}
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if strings.TrimSpace(r.Image) == "" {
		return nil, fmt.Errorf("recipe has no image")
	}
	return &r, nil
}

// Path resolves p against the recipe directory. Absolute paths and empty
// strings are returned unchanged.
func (r *Recipe) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || r.Dir == "" {
		return p
	}
	return filepath.Join(r.Dir, p)
}
