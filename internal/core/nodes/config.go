package nodes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneConfig describes a scene in YAML or JSON.
type SceneConfig struct {
	LogLevel string        `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Planes   []PlaneConfig `json:"planes" yaml:"planes"`
}

// PlaneConfig describes one plane. Dimensions are passed to the engine as written.
type PlaneConfig struct {
	Name      string  `json:"name" yaml:"name"`
	MinWidth  float32 `json:"min_width" yaml:"min_width"`
	MinHeight float32 `json:"min_height" yaml:"min_height"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*SceneConfig, error) {
	var c SceneConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*SceneConfig, error) {
	var c SceneConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &c, nil
}

// LoadFile picks the decoder by extension: .json is JSON, anything else YAML.
func LoadFile(path string) (*SceneConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	defer f.Close()

	var c *SceneConfig
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects empty and duplicate plane names.
func (c *SceneConfig) Validate() error {
	seen := make(map[string]struct{}, len(c.Planes))
	for i, p := range c.Planes {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: plane %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate plane %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// Build validates c and adds every configured plane to scene, in order.
func (c *SceneConfig) Build(scene *Scene) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, p := range c.Planes {
		if _, err := scene.AddPlane(p.Name, p.MinWidth, p.MinHeight); err != nil {
			return err
		}
	}
	return nil
}
