package eui

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// Describe captures the application's windows in description form.
func (a *Application) Describe() Props {
	wins := Props{}
	for _, w := range a.Windows() {
		wins[w.id] = w.Save()
	}
	out := Props{"Windows": wins, "Theme": a.ctx.Theme}
	if a.HighDPI {
		out["HighDPI"] = true
	}
	if a.CustomTitleBar {
		out["CustomTitleBar"] = true
	}
	if a.UseSystemFileDialog {
		out["UseSystemFileDialog"] = true
	}
	if a.UseNetwork {
		out["UseNetwork"] = true
	}
	if icons := a.ctx.Icons.Descriptions(); len(icons) > 0 {
		out["Icons"] = icons
	}
	return out
}

// WriteTree writes the description of every window as indented JSON.
func (a *Application) WriteTree(wr io.Writer) error {
	enc := json.NewEncoder(wr)
	enc.SetIndent("", "  ")
	return enc.Encode(a.Describe())
}

// DumpTree writes the control tree to debug/tree.json.
func (a *Application) DumpTree() error {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join("debug", "tree.json"))
	if err != nil {
		return err
	}
	defer f.Close()
	return a.WriteTree(f)
}
