package eui

// MenuItem is one row of a drop-down menu.
type MenuItem struct {
	Text      string
	ID        string
	Separator bool
}

// Menu is a titled drop-down in a MenuBar.
type Menu struct {
	Text  string
	Items []MenuItem

	title *Button
	popup *Container
}

// Open reports whether the menu's drop-down is showing.
func (mu *Menu) Open() bool {
	return mu.popup != nil && mu.popup.win != nil
}

// MenuBar is a horizontal row of menu titles. Choosing an item emits
// EventMenuSelected with the item's id on the control and closes the menu.
type MenuBar struct {
	Container

	menus   []*Menu
	handler *EventHandler
}

func NewMenuBar() *MenuBar {
	m := &MenuBar{handler: newHandler()}
	m.typeName = "MenuBar"
	m.placer = Stack{Axis: Horizontal}
	m.layoutDirty = true
	m.expand = ExpandWidth
	m.Init(m)
	return m
}

func (m *MenuBar) AsContainer() *Container { return &m.Container }
func (m *MenuBar) Handler() *EventHandler  { return m.handler }
func (m *MenuBar) Menus() []*Menu          { return m.menus }

// AddMenu appends a menu title.
func (m *MenuBar) AddMenu(text string, items ...MenuItem) *Menu {
	mu := &Menu{Text: text, Items: items}
	mu.title = NewButton(text)
	mu.title.OnClick = func() { m.OpenMenu(mu) }
	m.InsertControl(mu.title)
	m.menus = append(m.menus, mu)
	return mu
}

// OpenMenu shows mu's drop-down below its title, closing any other.
func (m *MenuBar) OpenMenu(mu *Menu) {
	w := m.win
	if w == nil {
		return
	}
	for _, o := range m.menus {
		if o.Open() {
			w.ClosePopup(o.popup)
		}
	}
	mu.popup = m.buildPopup(mu)
	at := mu.title.ScreenPosition().Add(Pt(0, mu.title.size.Y))
	w.OpenPopup(mu.popup, at, false)
}

func (m *MenuBar) buildPopup(mu *Menu) *Container {
	box := NewVBox()
	for _, it := range mu.Items {
		if it.Separator {
			sep := NewSpacer()
			sep.SetExpand(ExpandWidth)
			sep.SetSize(Pt(0, max(m.Padding(), 1)))
			box.InsertControl(sep)
			continue
		}
		row := NewButton(it.Text)
		row.SetID(it.ID)
		row.SetExpand(ExpandWidth)
		row.OnClick = func() {
			m.emit(m.handler, UIEvent{Control: row, Type: EventMenuSelected, Text: it.Text})
			if w := row.win; w != nil {
				w.ClosePopups()
			}
		}
		box.InsertControl(row)
	}
	return box
}

// LoadMenus replaces the menus with the described ones.
func (m *MenuBar) LoadMenus(ctx *Context, menus []Props) error {
	m.RemoveAll()
	m.menus = nil
	m.ctx = ctx
	for _, mp := range menus {
		text, _ := mp.String("Text")
		var items []MenuItem
		for _, ip := range mp.List("Items") {
			it := MenuItem{}
			it.Text, _ = ip.String("Text")
			it.ID, _ = ip.String("ID")
			it.Separator, _ = ip.Bool("Separator")
			items = append(items, it)
		}
		m.AddMenu(text, items...)
	}
	return nil
}

// SaveMenus describes the menus in the form LoadMenus reads.
func (m *MenuBar) SaveMenus() []any {
	out := make([]any, 0, len(m.menus))
	for _, mu := range m.menus {
		items := make([]any, 0, len(mu.Items))
		for _, it := range mu.Items {
			if it.Separator {
				items = append(items, Props{"Separator": true})
				continue
			}
			ip := Props{"Text": it.Text}
			if it.ID != "" {
				ip["ID"] = it.ID
			}
			items = append(items, ip)
		}
		out = append(out, Props{"Text": mu.Text, "Items": items})
	}
	return out
}

func (m *MenuBar) Load(ctx *Context, p Props) error {
	if err := m.Base.Load(ctx, p); err != nil {
		return err
	}
	if _, ok := p["Expand"]; !ok {
		m.expand = ExpandWidth
	}
	return m.LoadMenus(ctx, p.List("Menus"))
}

func (m *MenuBar) Save(p Props) {
	m.Base.Save(p)
	p["Menus"] = m.SaveMenus()
}

func (m *MenuBar) Paint(p *Painter) {
	p.FillRect(m.LocalBounds(), m.Color(PropPopupBackground))
	m.paintChildren(p)
}
