package eui

// FileFilter restricts a file dialog to a set of extensions, given without
// the leading dot.
type FileFilter struct {
	Name       string
	Extensions []string
}

// FileDialog is implemented by backends that can show native file pickers.
// Both methods return ErrDialogCancelled when the user dismisses the
// dialog.
type FileDialog interface {
	OpenFile(title string, filters ...FileFilter) (string, error)
	SaveFile(title, name string, filters ...FileFilter) (string, error)
}

// OpenFile shows the context's file dialog, if any.
func (ctx *Context) OpenFile(title string, filters ...FileFilter) (string, error) {
	if ctx == nil || ctx.Dialogs == nil {
		return "", ErrNoFileDialog
	}
	return ctx.Dialogs.OpenFile(title, filters...)
}

func (ctx *Context) SaveFile(title, name string, filters ...FileFilter) (string, error) {
	if ctx == nil || ctx.Dialogs == nil {
		return "", ErrNoFileDialog
	}
	return ctx.Dialogs.SaveFile(title, name, filters...)
}
