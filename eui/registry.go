package eui

import (
	"fmt"
	"sort"
	"sync"
)

// Factory returns a fresh, detached control.
type Factory func() Control

// Registry maps description type names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in control types.
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Factory{}}
	r.Register("Container", func() Control { return NewPanel() })
	r.Register("VerticalContainer", func() Control { return NewVBox() })
	r.Register("HorizontalContainer", func() Control { return NewHBox() })
	r.Register("MarginContainer", func() Control { return NewMargin(Insets{}) })
	r.Register("ScrollContainer", func() Control { return NewScrollContainer() })
	r.Register("Text", func() Control { return NewText("") })
	r.Register("Button", func() Control { return NewButton("") })
	r.Register("Checkbox", func() Control { return NewCheckbox("") })
	r.Register("TextInput", func() Control { return NewTextInput() })
	r.Register("Image", func() Control { return NewImage("") })
	r.Register("List", func() Control { return NewList() })
	r.Register("Spacer", func() Control { return NewSpacer() })
	r.Register("MenuBar", func() Control { return NewMenuBar() })
	r.Register("ComboBox", func() Control { return NewComboBox() })
	return r
}

var (
	builtinOnce sync.Once
	builtins    *Registry
)

func builtinRegistry() *Registry {
	builtinOnce.Do(func() { builtins = NewRegistry() })
	return builtins
}

// Register adds or replaces a type.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.factories))
	for n := range r.factories {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Create builds a control from its description. Only Load runs here;
// theme-dependent sizing happens when the finished tree sees
// OnThemeChanged.
func (r *Registry) Create(ctx *Context, p Props) (Control, error) {
	t, ok := p.String("Type")
	if !ok {
		return nil, fmt.Errorf("control without Type")
	}
	f, ok := r.factories[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControlType, t)
	}
	c := f()
	if err := c.Load(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	return c, nil
}

// Build creates a control tree and runs the theme phase on it.
func (r *Registry) Build(ctx *Context, p Props) (Control, error) {
	c, err := r.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	c.OnThemeChanged(ctx)
	return c, nil
}

// SaveControl describes c in the form Registry.Create reads.
func SaveControl(c Control) Props {
	p := Props{"Type": c.TypeName()}
	c.Save(p)
	return p
}
