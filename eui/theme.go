package eui

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed themes/*.json
var embeddedThemes embed.FS

// ThemeDir is checked for palette files before the embedded ones.
var ThemeDir = "themes"

// Theme holds the global value of every Property plus the named colors of
// its palette. Controls resolve a property against their own overrides
// first and fall back to the window's theme.
type Theme struct {
	Name   string
	values [propertyCount]Variant
	colors map[string]Color
}

// reserved theme keys that are not properties
const (
	themeKeyComment = "Comment"
	themeKeyBase    = "Base"
	themeKeyColors  = "Colors"
)

// Get returns the theme value for p, or a null Variant.
func (t *Theme) Get(p Property) Variant {
	if t == nil || p < 0 || p >= propertyCount {
		return Variant{}
	}
	return t.values[p]
}

// Set replaces the value of p. Values of the wrong kind are rejected.
func (t *Theme) Set(p Property, v Variant) error {
	if p < 0 || p >= propertyCount {
		return fmt.Errorf("set %v: unknown property", p)
	}
	if v.Kind() != p.Kind() {
		return fmt.Errorf("set %v: want kind %d, got %d", p, p.Kind(), v.Kind())
	}
	t.values[p] = v
	return nil
}

// NamedColor returns a palette color by case-insensitive name.
func (t *Theme) NamedColor(name string) (Color, bool) {
	c, ok := t.colors[strings.ToLower(name)]
	return c, ok
}

// ResolveColor accepts a palette name or a hex color.
func (t *Theme) ResolveColor(s string) (Color, error) {
	if c, ok := t.NamedColor(strings.TrimSpace(s)); ok {
		return c, nil
	}
	return ParseColor(s)
}

// Clone returns a deep copy so callers can override values without touching
// the shared theme.
func (t *Theme) Clone() *Theme {
	n := &Theme{Name: t.Name, values: t.values, colors: make(map[string]Color, len(t.colors))}
	for k, v := range t.colors {
		n.colors[k] = v
	}
	return n
}

// resolveColor recursively resolves string references to colors after the
// palette has been parsed. Color strings may reference other named colors
// from the same palette.
func resolveColor(s string, raw map[string]string, named map[string]Color, seen map[string]bool) (Color, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	if c, ok := named[key]; ok {
		return c, nil
	}
	if val, ok := raw[key]; ok {
		if seen[key] {
			return Color{}, fmt.Errorf("color reference cycle for %s", key)
		}
		seen[key] = true
		c, err := resolveColor(val, raw, named, seen)
		if err != nil {
			return Color{}, err
		}
		named[key] = c
		return c, nil
	}
	return ParseColor(s)
}

// applyThemeProps merges a decoded theme object into t. Palette colors are
// resolved first so property values can name them.
func (t *Theme) applyThemeProps(p Props) error {
	if colors, ok := p.Map(themeKeyColors); ok {
		raw := map[string]string{}
		for n, v := range colors {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("color %s: want string, got %T", n, v)
			}
			raw[strings.ToLower(n)] = s
		}
		for n, v := range raw {
			c, err := resolveColor(v, raw, t.colors, map[string]bool{n: true})
			if err != nil {
				return fmt.Errorf("%s: %w", n, err)
			}
			t.colors[n] = c
		}
	}
	for key, raw := range p {
		switch key {
		case themeKeyComment, themeKeyBase, themeKeyColors:
			continue
		}
		prop, ok := PropertyByName(key)
		if !ok {
			log.Printf("theme %s: unknown property %q", t.Name, key)
			continue
		}
		v, err := parseVariant(prop, raw, t.ResolveColor)
		if err != nil {
			return fmt.Errorf("theme %s: %w", t.Name, err)
		}
		t.values[prop] = v
	}
	return nil
}

// readPalette returns the raw JSON of a palette from ThemeDir or the
// embedded set.
func readPalette(name string) ([]byte, error) {
	file := filepath.Join(ThemeDir, name+".json")
	data, err := os.ReadFile(file)
	if err == nil {
		return data, nil
	}
	data, err = embeddedThemes.ReadFile("themes/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return data, nil
}

// LoadTheme reads a palette by name. "Auto" picks Dark or Light through
// detectDark; a nil detector or a detection error falls back to Dark.
func LoadTheme(name string, detectDark func() (bool, error)) (*Theme, error) {
	if name == "" {
		name = "Dark"
	}
	if strings.EqualFold(name, "Auto") {
		name = "Dark"
		if detectDark != nil {
			dark, err := detectDark()
			if err != nil {
				log.Printf("theme: dark mode detection failed: %v", err)
			} else if !dark {
				name = "Light"
			}
		}
	}
	data, err := readPalette(name)
	if err != nil {
		return nil, err
	}
	var p Props
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	th := &Theme{Name: name, colors: map[string]Color{}}
	if err := th.applyThemeProps(p); err != nil {
		return nil, err
	}
	return th, nil
}

// DefaultTheme returns the embedded Dark palette.
func DefaultTheme() *Theme {
	th, err := LoadTheme("Dark", nil)
	if err != nil {
		// embedded palette is part of the build
		log.Printf("DefaultTheme: %v", err)
		return &Theme{Name: "Dark", colors: map[string]Color{}}
	}
	return th
}

// ThemeFromProps builds a theme from a description's Theme object: the
// palette named by Base is loaded and the remaining keys override it.
func ThemeFromProps(p Props, detectDark func() (bool, error)) (*Theme, error) {
	base, _ := p.String(themeKeyBase)
	th, err := LoadTheme(base, detectDark)
	if err != nil {
		return nil, err
	}
	if err := th.applyThemeProps(p); err != nil {
		return nil, err
	}
	return th, nil
}

// ListThemes returns the palette names available on disk and embedded.
func ListThemes() ([]string, error) {
	set := map[string]bool{}
	entries, err := fs.ReadDir(embeddedThemes, "themes")
	if err != nil {
		return nil, err
	}
	if disk, err := os.ReadDir(ThemeDir); err == nil {
		entries = append(entries, disk...)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		set[strings.TrimSuffix(e.Name(), ".json")] = true
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// MarshalJSON writes the theme in the same shape LoadTheme reads.
func (t *Theme) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	colors := map[string]string{}
	for n, c := range t.colors {
		colors[n] = c.Hex()
	}
	out[themeKeyColors] = colors
	for p := Property(0); p < propertyCount; p++ {
		if !t.values[p].IsNull() {
			out[p.String()] = t.values[p].Interface()
		}
	}
	return json.Marshal(out)
}
