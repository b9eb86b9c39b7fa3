package eui

import "fmt"

// maxDropHeight caps the drop-down; longer lists scroll.
const maxDropHeight = 200

// ComboBox shows the selected item next to an arrow button that opens the
// items as a drop-down list. Choosing an item emits EventDropdownSelected
// and closes the drop-down.
type ComboBox struct {
	Container

	value   *Text
	arrow   *Button
	list    *List
	popup   *ScrollContainer
	handler *EventHandler
}

func NewComboBox() *ComboBox {
	c := &ComboBox{handler: newHandler()}
	c.typeName = "ComboBox"
	c.placer = Stack{Axis: Horizontal}
	c.layoutDirty = true

	c.value = NewText("")
	c.value.SetExpand(ExpandWidth)
	c.arrow = NewButton("v")
	c.arrow.SetExpand(ExpandHeight)
	c.arrow.OnClick = c.Toggle

	c.list = NewList()
	c.list.SetExpand(ExpandWidth)
	c.list.OnSelect = c.picked
	c.popup = NewScrollContainer()
	c.popup.InsertControl(c.list)

	c.Init(c)
	c.InsertControl(c.value)
	c.InsertControl(c.arrow)
	return c
}

func (c *ComboBox) AsContainer() *Container { return &c.Container }
func (c *ComboBox) Handler() *EventHandler  { return c.handler }
func (c *ComboBox) Items() []string         { return c.list.Items() }
func (c *ComboBox) Selected() int           { return c.list.Selected() }

// Arrow is the button that opens the drop-down.
func (c *ComboBox) Arrow() *Button { return c.arrow }

// Value is the text showing the selected item.
func (c *ComboBox) Value() string { return c.value.text }

func (c *ComboBox) SetItems(items []string) {
	c.Close()
	c.list.SetItems(items)
	c.value.SetText("")
}

func (c *ComboBox) AddItem(s string) { c.list.AddItem(s) }

// Select shows item i without emitting an event; -1 clears the selection.
func (c *ComboBox) Select(i int) error {
	if err := c.list.Select(i); err != nil {
		return fmt.Errorf("combo box: %w", err)
	}
	text, _ := c.list.SelectedItem()
	c.value.SetText(text)
	return nil
}

// Open reports whether the drop-down is showing.
func (c *ComboBox) Open() bool { return c.popup.win != nil }

// Toggle opens the drop-down below the control, or closes it when open.
func (c *ComboBox) Toggle() {
	w := c.win
	if w == nil || c.disabled {
		return
	}
	if c.Open() {
		c.Close()
		return
	}
	h := min(c.list.DesiredSize().Y, maxDropHeight)
	c.popup.SetSize(Pt(max(c.size.X, c.list.DesiredSize().X), h))
	c.popup.ScrollTo(Point{})
	w.OpenPopup(c.popup.AsContainer(), c.ScreenPosition().Add(Pt(0, c.size.Y)), false)
}

func (c *ComboBox) Close() {
	if c.Open() {
		c.popup.win.ClosePopup(c.popup.AsContainer())
	}
}

func (c *ComboBox) picked(i int, text string) {
	c.value.SetText(text)
	c.Close()
	c.emit(c.handler, UIEvent{Control: c, Type: EventDropdownSelected, Index: i, Text: text})
}

func (c *ComboBox) OnThemeChanged(ctx *Context) {
	c.Container.OnThemeChanged(ctx)
	if !c.Open() {
		c.popup.OnThemeChanged(ctx)
	}
}

func (c *ComboBox) Paint(p *Painter) {
	c.paintBackground(p, PropBackground)
	c.paintChildren(p)
}

func (c *ComboBox) Load(ctx *Context, p Props) error {
	if err := c.Base.Load(ctx, p); err != nil {
		return err
	}
	if _, ok := p["Items"]; ok {
		c.list.SetItems(p.Strings("Items"))
	}
	if i, ok := p.Int("Selected"); ok {
		return c.Select(i)
	}
	return nil
}

func (c *ComboBox) Save(p Props) {
	c.Base.Save(p)
	items := make([]any, len(c.list.items))
	for i, it := range c.list.items {
		items[i] = it
	}
	p["Items"] = items
	if i := c.list.Selected(); i >= 0 {
		p["Selected"] = i
	}
}
