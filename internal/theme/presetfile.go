package theme

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/shade/internal/types"
)

type presetFile struct {
	Presets []types.Preset `json:"presets"`
}

// LoadPresetFile reads user presets from a YAML file:
//
//	presets:
//	  - name: ocean
//	    light:
//	      primary: "#0077b6"
//	    radius: 0.75
//
// A missing file yields no presets. Every preset is validated.
func LoadPresetFile(path string) ([]types.Preset, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var f presetFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}

	for i, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d in %s has no name", i, path)
		}
		if _, _, err := p.Palettes(); err != nil {
			return nil, err
		}
	}
	return f.Presets, nil
}

// SavePresetFile writes presets as YAML.
func SavePresetFile(path string, presets []types.Preset) error {
	data, err := yaml.Marshal(presetFile{Presets: presets})
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preset file: %w", err)
	}
	return nil
}
