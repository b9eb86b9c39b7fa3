package eui

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Description is a whole application read from a JSON or YAML file.
type Description struct {
	Theme               Props                        `json:"Theme,omitempty"`
	Icons               map[string]IconDescription   `json:"Icons,omitempty"`
	Windows             map[string]WindowDescription `json:"Windows"`
	HighDPI             bool                         `json:"HighDPI,omitempty"`
	CustomTitleBar      bool                         `json:"CustomTitleBar,omitempty"`
	UseSystemFileDialog bool                         `json:"UseSystemFileDialog,omitempty"`
	UseNetwork          bool                         `json:"UseNetwork,omitempty"`
	TabSize             int                          `json:"TabSize,omitempty"`
}

type WindowDescription struct {
	Title   string  `json:"Title,omitempty"`
	Width   float32 `json:"Width,omitempty"`
	Height  float32 `json:"Height,omitempty"`
	Modal   bool    `json:"Modal,omitempty"`
	Visible bool    `json:"Visible,omitempty"`
	MenuBar []Props `json:"MenuBar,omitempty"`
	Body    Props   `json:"Body,omitempty"`
}

// ParseDescription decodes a JSON description.
func ParseDescription(data []byte) (*Description, error) {
	d := &Description{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	return d, nil
}

// ParseDescriptionYAML decodes a YAML description. It goes through the JSON
// form so both formats produce the same value types.
func ParseDescriptionYAML(data []byte) (*Description, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	return ParseDescription(js)
}

// ReadDescriptionFile picks the decoder from the file extension.
func ReadDescriptionFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseDescriptionYAML(data)
	case ".json", "":
		return ParseDescription(data)
	}
	return nil, fmt.Errorf("%s: unknown description format", path)
}

func defaultTitle(id string) string {
	id = strings.NewReplacer("_", " ", "-", " ").Replace(id)
	return cases.Title(language.English).String(id)
}

// LoadDescriptionFile reads and applies a description file.
func (a *Application) LoadDescriptionFile(path string) error {
	d, err := ReadDescriptionFile(path)
	if err != nil {
		return err
	}
	return a.LoadDescription(d)
}

// LoadDescription creates the described windows. Existing windows with the
// same ids get their trees replaced.
func (a *Application) LoadDescription(d *Description) error {
	ctx := a.ctx
	a.HighDPI = d.HighDPI
	a.CustomTitleBar = d.CustomTitleBar
	a.UseSystemFileDialog = d.UseSystemFileDialog
	a.UseNetwork = d.UseNetwork
	if d.TabSize > 0 {
		ctx.TabSize = d.TabSize
	}
	if d.Theme != nil {
		th, err := ThemeFromProps(d.Theme, ctx.DetectDark)
		if err != nil {
			return err
		}
		ctx.Theme = th
	}
	if len(d.Icons) > 0 {
		if err := ctx.Icons.Load(d.Icons, ctx.Textures); err != nil {
			// icons are optional
			log.Printf("icons: %v", err)
		}
	}

	names := make([]string, 0, len(d.Windows))
	for n := range d.Windows {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == MainWindow || names[j] == MainWindow {
			return names[i] == MainWindow
		}
		return names[i] < names[j]
	})
	var show []string
	for _, n := range names {
		wd := d.Windows[n]
		w := a.NewWindow(n)
		if err := w.load(ctx, wd); err != nil {
			return fmt.Errorf("window %s: %w", n, err)
		}
		if wd.Visible {
			show = append(show, n)
		}
	}
	for _, n := range show {
		if err := a.DisplayWindow(n); err != nil {
			return err
		}
	}
	return nil
}

func (w *Window) load(ctx *Context, wd WindowDescription) error {
	if wd.Title != "" {
		w.SetTitle(wd.Title)
	}
	if wd.Width > 0 && wd.Height > 0 {
		w.Resize(Point{X: wd.Width, Y: wd.Height})
	}
	w.Modal = wd.Modal

	body := Props{}
	for k, v := range wd.Body {
		body[k] = v
	}
	if _, ok := body["Type"]; !ok {
		body["Type"] = "VerticalContainer"
	}
	c, err := ctx.registry().Create(ctx, body)
	if err != nil {
		return err
	}
	bodyC := c.AsContainer()
	if bodyC == nil {
		bodyC = NewVBox()
		bodyC.InsertControl(c)
	}

	root := bodyC
	var mb *MenuBar
	if len(wd.MenuBar) > 0 {
		mb = NewMenuBar()
		if err := mb.LoadMenus(ctx, wd.MenuBar); err != nil {
			return err
		}
		root = NewVBox()
		root.InsertControl(mb)
		bodyC.SetExpand(ExpandBoth)
		root.InsertControl(bodyC.self)
	}
	w.SetRoot(root)
	if mb != nil {
		w.menuBar, w.body = mb, bodyC
	}
	w.setTheme(ctx)
	return nil
}
