package backend

import (
	"errors"

	"github.com/sqweek/dialog"

	"euikit/eui"
)

// SystemDialog shows the operating system's file pickers.
type SystemDialog struct {
	// StartDir is where the pickers open.
	StartDir string
}

func (d SystemDialog) builder(title string, filters []eui.FileFilter) *dialog.FileBuilder {
	fb := dialog.File().Title(title)
	if d.StartDir != "" {
		fb = fb.SetStartDir(d.StartDir)
	}
	for _, f := range filters {
		fb = fb.Filter(f.Name, f.Extensions...)
	}
	return fb
}

func (d SystemDialog) OpenFile(title string, filters ...eui.FileFilter) (string, error) {
	name, err := d.builder(title, filters).Load()
	return name, dialogErr(err)
}

func (d SystemDialog) SaveFile(title, name string, filters ...eui.FileFilter) (string, error) {
	fb := d.builder(title, filters)
	if name != "" {
		fb = fb.SetStartFile(name)
	}
	out, err := fb.Save()
	return out, dialogErr(err)
}

func dialogErr(err error) error {
	if errors.Is(err, dialog.ErrCancelled) {
		return eui.ErrDialogCancelled
	}
	return err
}
