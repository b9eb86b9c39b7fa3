package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const settingsFile = "euikit.toml"

// Settings are the runner preferences kept between runs.
type Settings struct {
	// Theme overrides the description's theme base when set.
	Theme           string  `toml:"theme"`
	Scale           float32 `toml:"scale"`
	Vsync           bool    `toml:"vsync"`
	LastDescription string  `toml:"last_description"`
	SaveOnExit      bool    `toml:"save_on_exit"`
}

var gs = Settings{
	Scale:      1,
	Vsync:      true,
	SaveOnExit: true,
}

var settingsDirty bool

func loadSettings() error {
	data, err := os.ReadFile(filepath.Join(baseDir, settingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	s := gs
	if err := toml.Unmarshal(data, &s); err != nil {
		return err
	}
	if s.Scale <= 0 {
		s.Scale = 1
	}
	gs = s
	return nil
}

func saveSettings() error {
	if !settingsDirty {
		return nil
	}
	data, err := toml.Marshal(gs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(baseDir, settingsFile), data, 0644); err != nil {
		return err
	}
	settingsDirty = false
	return nil
}
