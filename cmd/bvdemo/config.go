package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/burning"
)

// Config describes the demo scene.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Format string `yaml:"format,omitempty"`

	Frames int    `yaml:"frames"`
	Output string `yaml:"output"`

	// Texture is an optional PNG or JPEG for the cube. A checkerboard is
	// generated when empty.
	Texture  string `yaml:"texture,omitempty"`
	Material string `yaml:"material,omitempty"`

	Wireframe   bool  `yaml:"wireframe,omitempty"`
	Shadow      bool  `yaml:"shadow,omitempty"`
	Perspective *bool `yaml:"perspective,omitempty"`

	Background string      `yaml:"background,omitempty"`
	Lights     []LightSpec `yaml:"lights,omitempty"`
}

// LightSpec is one light of the scene file.
type LightSpec struct {
	Type     string     `yaml:"type"`
	Position [3]float32 `yaml:"position,omitempty"`
	Dir      [3]float32 `yaml:"direction,omitempty"`
	Color    string     `yaml:"color,omitempty"`
	Radius   float32    `yaml:"radius,omitempty"`
}

func (c *Config) normalize() {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Format == "" {
		c.Format = "A8R8G8B8"
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Output == "" {
		c.Output = "bvdemo.png"
	}
	if c.Material == "" {
		c.Material = burning.Solid.String()
	}
	if c.Background == "" {
		c.Background = "#202030"
	}
	if c.Perspective == nil {
		on := true
		c.Perspective = &on
	}
	if len(c.Lights) == 0 {
		c.Lights = []LightSpec{{Type: "point", Position: [3]float32{3, 4, 3}, Color: "#FFFFFF", Radius: 50}}
	}
}

// LoadConfig reads a YAML scene file. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	cfg.normalize()
	return cfg, nil
}

// lights converts the light specs.
func (c *Config) lights() ([]burning.Light, error) {
	out := make([]burning.Light, 0, len(c.Lights))
	for _, s := range c.Lights {
		col := burning.Hex(s.Color).ColorF()
		if s.Color == "" {
			col = burning.RGB(1, 1, 1)
		}
		switch s.Type {
		case "", "point":
			out = append(out, burning.NewPointLight(burning.V3(s.Position[0], s.Position[1], s.Position[2]), col, s.Radius))
		case "directional":
			out = append(out, burning.NewDirectionalLight(burning.V3(s.Dir[0], s.Dir[1], s.Dir[2]), col))
		default:
			return nil, fmt.Errorf("light type %q", s.Type)
		}
	}
	return out, nil
}
