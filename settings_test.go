package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withBaseDir(t *testing.T) string {
	t.Helper()
	oldDir, oldGS, oldDirty := baseDir, gs, settingsDirty
	baseDir = t.TempDir()
	t.Cleanup(func() { baseDir, gs, settingsDirty = oldDir, oldGS, oldDirty })
	return baseDir
}

func TestLoadSettingsMissingFile(t *testing.T) {
	withBaseDir(t)
	before := gs
	if err := loadSettings(); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if gs != before {
		t.Fatalf("settings changed to %+v", gs)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := withBaseDir(t)
	data := "theme = \"Light\"\nscale = -2.0\nvsync = false\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loadSettings(); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if gs.Theme != "Light" || gs.Vsync {
		t.Fatalf("settings %+v", gs)
	}
	if gs.Scale != 1 {
		t.Fatalf("scale %v, want the default for a bad value", gs.Scale)
	}
	if !gs.SaveOnExit {
		t.Fatalf("unset keys lost their defaults")
	}
}

func TestLoadSettingsBadFile(t *testing.T) {
	dir := withBaseDir(t)
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("theme = "), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loadSettings(); err == nil {
		t.Fatalf("broken settings accepted")
	}
}

func TestSaveSettingsOnlyWhenDirty(t *testing.T) {
	dir := withBaseDir(t)
	path := filepath.Join(dir, settingsFile)
	settingsDirty = false
	if err := saveSettings(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("clean settings written: %v", err)
	}

	gs.LastDescription = "/tmp/ui.yaml"
	settingsDirty = true
	if err := saveSettings(); err != nil {
		t.Fatal(err)
	}
	if settingsDirty {
		t.Fatalf("still dirty after save")
	}
	gs = Settings{}
	if err := loadSettings(); err != nil {
		t.Fatal(err)
	}
	if gs.LastDescription != "/tmp/ui.yaml" {
		t.Fatalf("reloaded %+v", gs)
	}
}
