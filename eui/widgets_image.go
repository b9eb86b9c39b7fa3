package eui

var white = Color{R: 255, G: 255, B: 255, A: 255}

// Image shows a texture loaded from a file or a named icon, stretched to
// the control's size.
type Image struct {
	Base

	path     string
	icon     string
	tex      Texture
	autoSize bool
}

func NewImage(path string) *Image {
	im := &Image{path: path, autoSize: true}
	im.Init(im)
	return im
}

func (im *Image) TypeName() string { return "Image" }
func (im *Image) Path() string     { return im.path }
func (im *Image) Texture() Texture { return im.tex }

func (im *Image) SetPath(path string) {
	im.path, im.icon = path, ""
	im.resolve(im.Context())
}

func (im *Image) SetIcon(name string) {
	im.icon, im.path = name, ""
	im.resolve(im.Context())
}

func (im *Image) resolve(ctx *Context) {
	if ctx == nil {
		return
	}
	switch {
	case im.icon != "":
		im.tex, _ = ctx.Icons.Get(im.icon)
	case im.path != "" && ctx.Textures != nil:
		im.tex = ctx.Textures.Get(im.path)
	default:
		im.tex = Texture{}
	}
	if im.autoSize {
		im.setNatural(im.tex.Size)
	}
	im.Invalidate(InvalidatePaint)
}

func (im *Image) OnThemeChanged(ctx *Context) {
	im.Base.OnThemeChanged(ctx)
	im.resolve(ctx)
}

func (im *Image) Paint(p *Painter) {
	if !im.tex.Valid() {
		if DebugMode {
			p.StrokeRect(im.LocalBounds(), 1, debugOutline)
		}
		return
	}
	tint := white
	if im.disabled {
		tint = im.Color(PropDisabled)
	}
	p.Image(im.tex, im.LocalBounds(), tint)
}

func (im *Image) Load(ctx *Context, p Props) error {
	if err := im.Base.Load(ctx, p); err != nil {
		return err
	}
	if s, ok := p.String("Path"); ok {
		im.path = s
	}
	if s, ok := p.String("Icon"); ok {
		im.icon = s
	}
	_, sized := p["Size"]
	im.autoSize = !sized
	if v, ok := p.Bool("AutoSize"); ok {
		im.autoSize = v
	}
	return nil
}

func (im *Image) Save(p Props) {
	im.Base.Save(p)
	if im.path != "" {
		p["Path"] = im.path
	}
	if im.icon != "" {
		p["Icon"] = im.icon
	}
	p["AutoSize"] = im.autoSize
}
