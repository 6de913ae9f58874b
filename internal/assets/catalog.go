// Package assets loads the image catalog: the glyph and color each named
// image is drawn with in the terminal.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Image names used by the game.
const (
	Ball       = "ball"
	TurboBall  = "turbo_ball"
	Puck       = "puck"
	Paddle     = "paddle"
	Brick      = "brick"
	Heart      = "heart"
	Wall       = "wall"
	Background = "background"
)

//go:embed data/images.yaml
var defaultImagesYAML []byte

// missing is drawn for names that are not in the catalog.
var missing = scene.Visual{Glyph: '?', Color: core.ColorMagenta}

type imageSpec struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Shape string `yaml:"shape"` // "fill" (default) or "point"
}

type catalogFile struct {
	Images map[string]imageSpec `yaml:"images"`
}

// Catalog maps image names to visuals. It implements scene.ImageReader.
type Catalog struct {
	images map[string]scene.Visual
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultImagesYAML)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file and layers it over the embedded one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read catalog %s: %w", path, err)
	}
	over, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot parse catalog %s: %w", path, err)
	}
	c := Default()
	for name, v := range over.images {
		c.images[name] = v
	}
	return c, nil
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	c := &Catalog{images: make(map[string]scene.Visual, len(f.Images))}
	for name, spec := range f.Images {
		if utf8.RuneCountInString(spec.Glyph) != 1 {
			return nil, fmt.Errorf("image %q: glyph must be a single character, got %q", name, spec.Glyph)
		}
		color, ok := core.ParseColor(spec.Color)
		if spec.Color != "" && !ok {
			return nil, fmt.Errorf("image %q: unknown color %q", name, spec.Color)
		}
		if spec.Shape != "" && spec.Shape != "fill" && spec.Shape != "point" {
			return nil, fmt.Errorf("image %q: unknown shape %q", name, spec.Shape)
		}
		r, _ := utf8.DecodeRuneInString(spec.Glyph)
		c.images[name] = scene.Visual{Glyph: r, Color: color, Point: spec.Shape == "point"}
	}
	return c, nil
}

// ReadImage returns the visual for name, or a magenta '?' when it is unknown.
func (c *Catalog) ReadImage(name string) scene.Visual {
	if v, ok := c.images[name]; ok {
		return v
	}
	return missing
}

// Has reports whether the catalog defines name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.images[name]
	return ok
}
