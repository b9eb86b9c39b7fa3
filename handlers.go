package main

import (
	"errors"
	"os"

	"euikit/eui"
)

var descFilter = eui.FileFilter{Name: "UI description", Extensions: []string{"json", "yaml", "yml"}}

// handleEvent reacts to the well-known control ids of the bundled
// descriptions. Everything else is only logged.
func handleEvent(app *eui.Application, ev eui.UIEvent) {
	logDebug("event %v from %q text=%q index=%d checked=%v", ev.Type, ev.ID(), ev.Text, ev.Index, ev.Checked)

	switch ev.ID() {
	case "quit":
		app.Quit()
	case "about":
		if err := app.DisplayWindow("About"); err != nil {
			logError("about: %v", err)
		}
	case "about-close":
		if w := app.Window("About"); w != nil {
			w.Close()
		}
	case "open":
		path, err := app.Context().OpenFile("Open description", descFilter)
		if err != nil {
			dialogError("open", err)
			return
		}
		if err := app.LoadDescriptionFile(path); err != nil {
			logError("load %s: %v", path, err)
			return
		}
		descPath = path
	case "save":
		path, err := app.Context().SaveFile("Save description", "ui.json", descFilter)
		if err != nil {
			dialogError("save", err)
			return
		}
		if err := writeDescription(app, path); err != nil {
			logError("save %s: %v", path, err)
		}
	case "dump":
		if err := app.DumpTree(); err != nil {
			logError("dump tree: %v", err)
		}
	case "theme":
		name := "Dark"
		if ev.Checked {
			name = "Light"
		}
		th, err := eui.LoadTheme(name, app.Context().DetectDark)
		if err != nil {
			logError("theme %s: %v", name, err)
			return
		}
		app.SetTheme(th)
		gs.Theme = name
		settingsDirty = true
	}
}

func dialogError(op string, err error) {
	if errors.Is(err, eui.ErrDialogCancelled) {
		return
	}
	logError("%s dialog: %v", op, err)
}

func writeDescription(app *eui.Application, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := app.WriteTree(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
