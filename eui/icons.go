package eui

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// IconDescription points at a bitmap file. SVG holds vector sources keyed
// by variant; those are recognized but not rendered.
type IconDescription struct {
	Path string            `json:"Path,omitempty" yaml:"Path,omitempty"`
	SVG  map[string]string `json:"SVG,omitempty" yaml:"SVG,omitempty"`
}

// Icons maps icon names to loaded textures.
type Icons struct {
	byName map[string]Texture
	defs   map[string]IconDescription
}

func NewIcons() *Icons {
	return &Icons{byName: map[string]Texture{}, defs: map[string]IconDescription{}}
}

// Load resolves every description through tc. Icons that fail are left out
// and reported together; the others stay usable.
func (ic *Icons) Load(defs map[string]IconDescription, tc *TextureCache) error {
	names := make([]string, 0, len(defs))
	for n := range defs {
		names = append(names, n)
	}
	sort.Strings(names)
	var paths []string
	for _, n := range names {
		if d := defs[n]; d.Path != "" && !isSVG(d.Path) {
			paths = append(paths, d.Path)
		}
	}
	if tc != nil {
		tc.Preload(paths)
	}
	var errs []error
	for _, n := range names {
		d := defs[n]
		ic.defs[n] = d
		switch {
		case d.Path == "" || isSVG(d.Path):
			errs = append(errs, fmt.Errorf("icon %s: %w", n, ErrUnsupportedIcon))
		case tc == nil:
			errs = append(errs, fmt.Errorf("icon %s: %w", n, ErrNoTextureProvider))
		default:
			t := tc.Get(d.Path)
			if !t.Valid() {
				errs = append(errs, fmt.Errorf("icon %s: %s not loaded", n, d.Path))
				continue
			}
			ic.byName[n] = t
		}
	}
	return errors.Join(errs...)
}

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

func (ic *Icons) Get(name string) (Texture, bool) {
	if ic == nil {
		return Texture{}, false
	}
	t, ok := ic.byName[name]
	return t, ok
}

// Descriptions returns the loaded definitions for saving.
func (ic *Icons) Descriptions() map[string]IconDescription {
	out := make(map[string]IconDescription, len(ic.defs))
	for n, d := range ic.defs {
		out[n] = d
	}
	return out
}
