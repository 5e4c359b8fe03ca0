package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
}

type builder func() (*Scene, error)

var registry = map[string]struct {
	description string
	build       builder
}{
	"algebraic": {"Heart and Mitchell implicit surfaces over a checkered floor", NewAlgebraicScene},
	"shapes":    {"Analytic cylinder and box", func() (*Scene, error) { return NewShapesScene(), nil }},
	"transform": {"Primitives under scaling, rotation and nested transforms", NewTransformScene},
	"tunnel":    {"Flattened boxes as walls with spheres and a tilted cylinder", NewTunnelScene},
	"sdf":       {"CSG solid and torus evaluated as signed distance fields", NewSDFScene},
}

// Names returns the registered scene identifiers in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for every registered scene, sorted by identifier
func List() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: registry[name].description,
		})
	}
	return scenes
}

// New builds the scene registered under name
func New(name string) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	s, err := entry.build()
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
