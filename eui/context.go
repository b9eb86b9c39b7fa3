package eui

import (
	"strings"
)

// Context carries the services controls need: theme, font, textures and
// the control registry. One Context is shared by all windows of an
// application.
type Context struct {
	Theme    *Theme
	Font     Font
	Textures *TextureCache
	Icons    *Icons
	Registry *Registry
	Dialogs  FileDialog

	// TabSize is the number of spaces a tab expands to.
	TabSize int

	// DetectDark reports the desktop's dark mode setting for the "Auto"
	// theme.
	DetectDark func() (bool, error)
}

// NewContext returns a Context with the default theme, the built-in font
// and all built-in control types registered.
func NewContext(tp TextureProvider) *Context {
	tc := NewTextureCache(tp)
	return &Context{
		Theme:    DefaultTheme(),
		Font:     NewBasicFont(tc),
		Textures: tc,
		Icons:    NewIcons(),
		Registry: NewRegistry(),
		TabSize:  4,
	}
}

func (ctx *Context) registry() *Registry {
	if ctx == nil || ctx.Registry == nil {
		return builtinRegistry()
	}
	return ctx.Registry
}

func (ctx *Context) tabSize() int {
	if ctx == nil || ctx.TabSize <= 0 {
		return 4
	}
	return ctx.TabSize
}

func (ctx *Context) expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", ctx.tabSize()))
}

// MeasureText measures s in the context font with tabs expanded.
func (ctx *Context) MeasureText(s string, size float32) Point {
	if ctx == nil || ctx.Font == nil {
		return Point{}
	}
	return ctx.Font.Measure(ctx.expandTabs(s), size)
}

// LineHeight is the font line height at size.
func (ctx *Context) LineHeight(size float32) float32 {
	if ctx == nil || ctx.Font == nil {
		return size
	}
	return ctx.Font.LineHeight(size)
}
