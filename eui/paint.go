package eui

import "math"

// Vertex mirrors the vertex layout backends draw with. Destination
// coordinates are window pixels; source coordinates are texels of the
// batch texture.
type Vertex struct {
	DstX, DstY     float32
	SrcX, SrcY     float32
	ColorR, ColorG float32
	ColorB, ColorA float32
}

// Batch is a run of triangles sharing one texture and one clip rectangle.
// Texture 0 means a solid fill.
type Batch struct {
	Texture  TextureID
	Clip     Rect
	Vertices []Vertex
	Indices  []uint16
}

// DrawList is the output of painting one window.
type DrawList struct {
	Batches []Batch
}

// Reset returns the buffers to the pools and empties the list.
func (l *DrawList) Reset() {
	for i := range l.Batches {
		putVertices(l.Batches[i].Vertices)
		putIndices(l.Batches[i].Indices)
		l.Batches[i] = Batch{}
	}
	l.Batches = l.Batches[:0]
}

func (l *DrawList) VertexCount() int {
	n := 0
	for _, b := range l.Batches {
		n += len(b.Vertices)
	}
	return n
}

// Frame is one painted window handed to Platform.Present.
type Frame struct {
	List *DrawList
	// Damage is the union of the areas that changed, in window pixels.
	Damage Rect
	// Full is set when the whole window must be redrawn.
	Full  bool
	Size  Point
	Scale float32
}

const maxBatchVertices = math.MaxUint16

// Painter records drawing commands for a window into a DrawList. All
// coordinates given to it are local to the control being painted; the
// painter applies the accumulated offset, the window scale and the clip.
type Painter struct {
	list  *DrawList
	ctx   *Context
	scale float32

	offset  Point
	offsets []Point
	clip    Rect
	clips   []Rect
}

// NewPainter starts painting into list with bounds, in window units, as the
// outermost clip.
func NewPainter(list *DrawList, ctx *Context, scale float32, bounds Rect) *Painter {
	if scale <= 0 {
		scale = 1
	}
	return &Painter{list: list, ctx: ctx, scale: scale, clip: bounds}
}

func (p *Painter) Context() *Context { return p.ctx }
func (p *Painter) Offset() Point     { return p.offset }

// Clip is the current clip in window units.
func (p *Painter) Clip() Rect { return p.clip }

func (p *Painter) PushOffset(d Point) {
	p.offsets = append(p.offsets, p.offset)
	p.offset = p.offset.Add(d)
}

func (p *Painter) PopOffset() {
	n := len(p.offsets)
	if n == 0 {
		return
	}
	p.offset = p.offsets[n-1]
	p.offsets = p.offsets[:n-1]
}

// PushClip narrows the clip to r, given in local coordinates.
func (p *Painter) PushClip(r Rect) {
	p.clips = append(p.clips, p.clip)
	p.clip = p.clip.Intersect(r.Add(p.offset))
}

func (p *Painter) PopClip() {
	n := len(p.clips)
	if n == 0 {
		return
	}
	p.clip = p.clips[n-1]
	p.clips = p.clips[:n-1]
}

// Visible reports whether local rectangle r touches the clip.
func (p *Painter) Visible(r Rect) bool {
	return p.clip.Overlaps(r.Add(p.offset))
}

func round(v float32) float32 { return float32(math.Round(float64(v))) }

func (p *Painter) pixelClip() Rect {
	c := p.clip
	s := p.scale
	return Rect{X0: round(c.X0 * s), Y0: round(c.Y0 * s), X1: round(c.X1 * s), Y1: round(c.Y1 * s)}
}

// batch returns the batch quads for tex should go into, starting a new one
// when the texture or clip changes or the index range would overflow.
func (p *Painter) batch(tex TextureID, verts int) *Batch {
	clip := p.pixelClip()
	if n := len(p.list.Batches); n > 0 {
		b := &p.list.Batches[n-1]
		if b.Texture == tex && b.Clip == clip && len(b.Vertices)+verts <= maxBatchVertices {
			return b
		}
	}
	p.list.Batches = append(p.list.Batches, Batch{
		Texture:  tex,
		Clip:     clip,
		Vertices: getVertices(),
		Indices:  getIndices(),
	})
	return &p.list.Batches[len(p.list.Batches)-1]
}

// quad emits a textured rectangle. dst is local, src in texels.
func (p *Painter) quad(tex TextureID, dst, src Rect, col Color) {
	if col.A == 0 || dst.Empty() {
		return
	}
	d := dst.Add(p.offset)
	if !p.clip.Overlaps(d) {
		return
	}
	s := p.scale
	x0, y0, x1, y1 := round(d.X0*s), round(d.Y0*s), round(d.X1*s), round(d.Y1*s)
	r, g, bl, a := col.Floats()
	b := p.batch(tex, 4)
	base := uint16(len(b.Vertices))
	b.Vertices = append(b.Vertices,
		Vertex{DstX: x0, DstY: y0, SrcX: src.X0, SrcY: src.Y0, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		Vertex{DstX: x1, DstY: y0, SrcX: src.X1, SrcY: src.Y0, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		Vertex{DstX: x1, DstY: y1, SrcX: src.X1, SrcY: src.Y1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
		Vertex{DstX: x0, DstY: y1, SrcX: src.X0, SrcY: src.Y1, ColorR: r, ColorG: g, ColorB: bl, ColorA: a},
	)
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
}

func (p *Painter) FillRect(r Rect, col Color) {
	p.quad(0, r, Rect{}, col)
}

// StrokeRect outlines r on the inside with the given width.
func (p *Painter) StrokeRect(r Rect, width float32, col Color) {
	if width <= 0 {
		return
	}
	width = min(width, r.Dx()/2, r.Dy()/2)
	p.FillRect(Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + width}, col)
	p.FillRect(Rect{X0: r.X0, Y0: r.Y1 - width, X1: r.X1, Y1: r.Y1}, col)
	p.FillRect(Rect{X0: r.X0, Y0: r.Y0 + width, X1: r.X0 + width, Y1: r.Y1 - width}, col)
	p.FillRect(Rect{X0: r.X1 - width, Y0: r.Y0 + width, X1: r.X1, Y1: r.Y1 - width}, col)
}

// Line draws a segment as a quad of the given width.
func (p *Painter) Line(a, b Point, width float32, col Color) {
	if col.A == 0 || width <= 0 {
		return
	}
	d := b.Sub(a)
	l := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if l == 0 {
		return
	}
	n := Point{X: -d.Y / l, Y: d.X / l}.Mul(width / 2)
	lo := Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}.Add(p.offset)
	hi := Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}.Add(p.offset)
	if !p.clip.Overlaps(Rect{X0: lo.X - width, Y0: lo.Y - width, X1: hi.X + width, Y1: hi.Y + width}) {
		return
	}
	s := p.scale
	pts := [4]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	r, g, bl, al := col.Floats()
	bt := p.batch(0, 4)
	base := uint16(len(bt.Vertices))
	for _, pt := range pts {
		pt = pt.Add(p.offset).Mul(s)
		bt.Vertices = append(bt.Vertices, Vertex{DstX: pt.X, DstY: pt.Y, ColorR: r, ColorG: g, ColorB: bl, ColorA: al})
	}
	bt.Indices = append(bt.Indices, base, base+1, base+2, base, base+2, base+3)
}

// Image draws the whole texture into dst, tinted by col.
func (p *Painter) Image(tex Texture, dst Rect, col Color) {
	if !tex.Valid() {
		return
	}
	p.quad(tex.ID, dst, Rect{X1: tex.Size.X, Y1: tex.Size.Y}, col)
}

// ImageRegion draws the src texels of tex into dst.
func (p *Painter) ImageRegion(tex Texture, dst, src Rect, col Color) {
	if !tex.Valid() {
		return
	}
	p.quad(tex.ID, dst, src, col)
}

// Text draws a single or multi line string with its top-left corner at at.
// Tabs expand to the context's tab size.
func (p *Painter) Text(s string, at Point, size float32, col Color) {
	if p.ctx == nil || p.ctx.Font == nil || s == "" {
		return
	}
	f := p.ctx.Font
	tex := f.Texture()
	lh := f.LineHeight(size)
	pen := Point{X: at.X, Y: at.Y + f.Ascent(size)}
	for _, r := range p.ctx.expandTabs(s) {
		if r == '\n' {
			pen.X = at.X
			pen.Y += lh
			continue
		}
		g, ok := f.Glyph(r, size)
		if !ok {
			continue
		}
		if !g.Quad.Empty() {
			p.quad(tex.ID, g.Quad.Add(pen), g.Src, col)
		}
		pen.X += g.Advance
	}
}
