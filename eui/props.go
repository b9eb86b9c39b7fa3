package eui

// Props is the decoded form of a control descriptor. Values follow the
// encoding/json conventions (float64, string, bool, []any, map[string]any);
// YAML documents decode to the same shapes.
type Props map[string]any

func (p Props) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

func (p Props) Float(key string) (float32, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

func (p Props) Int(key string) (int, bool) {
	f, ok := p.Float(key)
	return int(f), ok
}

func (p Props) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// Point reads [x, y] or {"X": x, "Y": y}.
func (p Props) Point(key string) (Point, bool) {
	v, ok := p[key]
	if !ok {
		return Point{}, false
	}
	return toPoint(v)
}

// Insets reads [left, top, right, bottom] or a single number.
func (p Props) Insets(key string) (Insets, bool) {
	v, ok := p[key]
	if !ok {
		return Insets{}, false
	}
	if f, ok := toFloat(v); ok {
		return UniformInsets(f), true
	}
	list, ok := v.([]any)
	if !ok || len(list) != 4 {
		return Insets{}, false
	}
	var vals [4]float32
	for i, e := range list {
		f, ok := toFloat(e)
		if !ok {
			return Insets{}, false
		}
		vals[i] = f
	}
	return Insets{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}, true
}

// Strings reads a list of strings, skipping entries of other types.
func (p Props) Strings(key string) []string {
	list, _ := p[key].([]any)
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map reads a nested object.
func (p Props) Map(key string) (Props, bool) {
	return toProps(p[key])
}

// List reads a list of nested objects, skipping entries of other types.
func (p Props) List(key string) []Props {
	list, _ := p[key].([]any)
	out := make([]Props, 0, len(list))
	for _, e := range list {
		if m, ok := toProps(e); ok {
			out = append(out, m)
		}
	}
	return out
}

func (p Props) SetPoint(key string, pt Point) {
	p[key] = []any{float64(pt.X), float64(pt.Y)}
}

func (p Props) SetInsets(key string, in Insets) {
	p[key] = []any{float64(in.Left), float64(in.Top), float64(in.Right), float64(in.Bottom)}
}

func (p Props) SetFloat(key string, f float32) {
	p[key] = float64(f)
}

func toProps(v any) (Props, bool) {
	switch m := v.(type) {
	case Props:
		return m, true
	case map[string]any:
		return Props(m), true
	}
	return nil, false
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}

func toPoint(v any) (Point, bool) {
	switch t := v.(type) {
	case []any:
		if len(t) != 2 {
			return Point{}, false
		}
		x, okx := toFloat(t[0])
		y, oky := toFloat(t[1])
		return Point{X: x, Y: y}, okx && oky
	case map[string]any:
		x, okx := toFloat(t["X"])
		y, oky := toFloat(t["Y"])
		return Point{X: x, Y: y}, okx && oky
	case Props:
		return toPoint(map[string]any(t))
	}
	return Point{}, false
}
