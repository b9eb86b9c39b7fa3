package eui

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestColorReferenceCycle(t *testing.T) {
	_, err := ThemeFromProps(Props{
		"Colors": map[string]any{"a": "b", "b": "c", "c": "a"},
	}, nil)
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("err = %v, want a cycle error", err)
	}
}

func TestColorReferencesResolve(t *testing.T) {
	th, err := ThemeFromProps(Props{
		"Colors": map[string]any{"Brand": "deep", "deep": "#102030"},
		"Accent": "brand",
		"Border": "#fff",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	if got, _ := th.Get(PropAccent).Color(); got != want {
		t.Errorf("Accent = %v, want %v", got, want)
	}
	if got, _ := th.Get(PropBorder).Color(); got != (Color{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Border = %v", got)
	}
	if got, ok := th.NamedColor("BRAND"); !ok || got != want {
		t.Errorf("NamedColor = %v, %v", got, ok)
	}
	if _, ok := th.Get(PropPadding).Float(); !ok {
		t.Errorf("base palette values lost")
	}
}

func TestThemeRejectsWrongKind(t *testing.T) {
	if _, err := ThemeFromProps(Props{"Padding": "wide"}, nil); err == nil {
		t.Fatalf("string accepted for Padding")
	}
	if _, err := ThemeFromProps(Props{"Accent": "nosuchcolor"}, nil); err == nil {
		t.Fatalf("unknown color name accepted")
	}
}

func TestAutoThemeFollowsDetector(t *testing.T) {
	tests := []struct {
		name   string
		detect func() (bool, error)
		want   string
	}{
		{"dark desktop", func() (bool, error) { return true, nil }, "Dark"},
		{"light desktop", func() (bool, error) { return false, nil }, "Light"},
		{"detection fails", func() (bool, error) { return false, errors.New("no dbus") }, "Dark"},
		{"no detector", nil, "Dark"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th, err := LoadTheme("Auto", tc.detect)
			if err != nil {
				t.Fatal(err)
			}
			if th.Name != tc.want {
				t.Fatalf("theme %q, want %q", th.Name, tc.want)
			}
		})
	}
}

func TestLoadThemeUnknown(t *testing.T) {
	if _, err := LoadTheme("Plaid", nil); err == nil {
		t.Fatalf("unknown palette loaded")
	}
}

func TestThemeDirOverridesAndLists(t *testing.T) {
	dir := t.TempDir()
	old := ThemeDir
	ThemeDir = dir
	defer func() { ThemeDir = old }()

	custom := `{"Colors": {"ink": "#010203"}, "Foreground": "ink", "Padding": 2}`
	if err := os.WriteFile(filepath.Join(dir, "Custom.json"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	names, err := ListThemes()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Custom", "Dark", "Light"} {
		if !slices.Contains(names, want) {
			t.Errorf("ListThemes() = %v, missing %s", names, want)
		}
	}
	th, err := LoadTheme("Custom", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := th.Get(PropPadding).Float(); got != 2 {
		t.Errorf("Padding = %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	th := DefaultTheme()
	c := th.Clone()
	if err := c.Set(PropPadding, FloatValue(99)); err != nil {
		t.Fatal(err)
	}
	if got, _ := th.Get(PropPadding).Float(); got == 99 {
		t.Fatalf("clone shares values")
	}
	if err := c.Set(PropPadding, BoolValue(true)); err == nil {
		t.Fatalf("wrong kind accepted")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"#abc", Color{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, false},
		{"#102030", Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{" #10203040 ", Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"102030", Color{}, true},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.err || got != tc.want {
			t.Errorf("ParseColor(%q) = %v, %v", tc.in, got, err)
		}
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 255}).Hex(); got != "#010203" {
		t.Errorf("Hex = %q", got)
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 4}).Hex(); got != "#01020304" {
		t.Errorf("Hex = %q", got)
	}
}
