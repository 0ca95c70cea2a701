package theme

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/renato0307/shade/internal/types"
)

// FindPresets fuzzy-matches preset names, best match first. A query starting
// with "!" keeps the presets that do not match. An empty query returns all.
func FindPresets(presets []types.Preset, query string) []types.Preset {
	if query == "" {
		return presets
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}

	if negated, ok := strings.CutPrefix(query, "!"); ok {
		matched := make(map[int]bool)
		for _, m := range fuzzy.Find(negated, names) {
			matched[m.Index] = true
		}
		out := make([]types.Preset, 0, len(presets))
		for i, p := range presets {
			if !matched[i] {
				out = append(out, p)
			}
		}
		return out
	}

	matches := fuzzy.Find(query, names)
	out := make([]types.Preset, len(matches))
	for i, m := range matches {
		out[i] = presets[m.Index]
	}
	return out
}
