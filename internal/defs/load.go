package defs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load builds a provider from the builtin bundle plus any YAML bundles in
// dir. An empty dir means builtin only. Bundle files are applied in
// lexical order so overlays are deterministic.
func Load(dir string) (*StaticProvider, error) {
	bundles := []Bundle{Base()}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read defs dir: %w", err)
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			b, err := loadBundle(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			bundles = append(bundles, b)
		}
	}

	return NewStaticProvider(bundles...), nil
}

func loadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("read bundle %s: %w", path, err)
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("parse bundle %s: %w", path, err)
	}
	return b, nil
}
