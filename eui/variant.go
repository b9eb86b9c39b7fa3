package eui

import (
	"encoding/json"
	"fmt"
)

// Property names a themeable value. The set is fixed; descriptions refer to
// properties by the names in propertyInfo.
type Property int

const (
	PropBackground Property = iota
	PropForeground
	PropBorder
	PropHover
	PropPressed
	PropAccent
	PropDisabled
	PropSelection
	PropPopupBackground
	PropScrollbarTrack
	PropScrollbarHandle
	PropCaret

	PropPadding
	PropSpacing
	PropBorderWidth
	PropFontSize
	PropScrollbarWidth
	PropScrollStep
	PropCheckboxSize

	PropMinSize

	PropDrawBackground
	PropDrawBorder

	PropCursor

	propertyCount
)

// VariantKind is the type tag of a Variant.
type VariantKind uint8

const (
	VariantNull VariantKind = iota
	VariantColor
	VariantFloat
	VariantVector
	VariantBool
	VariantString
)

var propertyInfo = [propertyCount]struct {
	name string
	kind VariantKind
}{
	PropBackground:      {"Background", VariantColor},
	PropForeground:      {"Foreground", VariantColor},
	PropBorder:          {"Border", VariantColor},
	PropHover:           {"Hover", VariantColor},
	PropPressed:         {"Pressed", VariantColor},
	PropAccent:          {"Accent", VariantColor},
	PropDisabled:        {"Disabled", VariantColor},
	PropSelection:       {"Selection", VariantColor},
	PropPopupBackground: {"PopupBackground", VariantColor},
	PropScrollbarTrack:  {"ScrollbarTrack", VariantColor},
	PropScrollbarHandle: {"ScrollbarHandle", VariantColor},
	PropCaret:           {"Caret", VariantColor},
	PropPadding:         {"Padding", VariantFloat},
	PropSpacing:         {"Spacing", VariantFloat},
	PropBorderWidth:     {"BorderWidth", VariantFloat},
	PropFontSize:        {"FontSize", VariantFloat},
	PropScrollbarWidth:  {"ScrollbarWidth", VariantFloat},
	PropScrollStep:      {"ScrollStep", VariantFloat},
	PropCheckboxSize:    {"CheckboxSize", VariantFloat},
	PropMinSize:         {"MinSize", VariantVector},
	PropDrawBackground:  {"DrawBackground", VariantBool},
	PropDrawBorder:      {"DrawBorder", VariantBool},
	PropCursor:          {"Cursor", VariantString},
}

func (p Property) String() string {
	if p < 0 || p >= propertyCount {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyInfo[p].name
}

// Kind returns the value type the property holds.
func (p Property) Kind() VariantKind {
	if p < 0 || p >= propertyCount {
		return VariantNull
	}
	return propertyInfo[p].kind
}

// PropertyByName looks a property up by its description name.
func PropertyByName(name string) (Property, bool) {
	for p := Property(0); p < propertyCount; p++ {
		if propertyInfo[p].name == name {
			return p, true
		}
	}
	return 0, false
}

// Variant is a typed theme value. The zero Variant is null.
type Variant struct {
	kind VariantKind
	c    Color
	f    float32
	v    Point
	b    bool
	s    string
}

func ColorValue(c Color) Variant   { return Variant{kind: VariantColor, c: c} }
func FloatValue(f float32) Variant { return Variant{kind: VariantFloat, f: f} }
func VectorValue(v Point) Variant  { return Variant{kind: VariantVector, v: v} }
func BoolValue(b bool) Variant     { return Variant{kind: VariantBool, b: b} }
func StringValue(s string) Variant { return Variant{kind: VariantString, s: s} }

func (v Variant) Kind() VariantKind { return v.kind }
func (v Variant) IsNull() bool      { return v.kind == VariantNull }

func (v Variant) Color() (Color, bool)   { return v.c, v.kind == VariantColor }
func (v Variant) Float() (float32, bool) { return v.f, v.kind == VariantFloat }
func (v Variant) Vector() (Point, bool)  { return v.v, v.kind == VariantVector }
func (v Variant) Bool() (bool, bool)     { return v.b, v.kind == VariantBool }
func (v Variant) Str() (string, bool)    { return v.s, v.kind == VariantString }

// Interface returns the value in the form used by descriptions: a hex
// string for colors, float64, [2]float64, bool or string.
func (v Variant) Interface() any {
	switch v.kind {
	case VariantColor:
		return v.c.Hex()
	case VariantFloat:
		return float64(v.f)
	case VariantVector:
		return []any{float64(v.v.X), float64(v.v.Y)}
	case VariantBool:
		return v.b
	case VariantString:
		return v.s
	}
	return nil
}

func (v Variant) MarshalJSON() ([]byte, error) { return json.Marshal(v.Interface()) }

// parseVariant converts a decoded description value into a Variant of the
// kind expected by p. Color strings go through resolve so palette names and
// references can be used.
func parseVariant(p Property, raw any, resolve func(string) (Color, error)) (Variant, error) {
	switch p.Kind() {
	case VariantColor:
		s, ok := raw.(string)
		if !ok {
			return Variant{}, fmt.Errorf("%s: want color string, got %T", p, raw)
		}
		c, err := resolve(s)
		if err != nil {
			return Variant{}, fmt.Errorf("%s: %w", p, err)
		}
		return ColorValue(c), nil
	case VariantFloat:
		f, ok := toFloat(raw)
		if !ok {
			return Variant{}, fmt.Errorf("%s: want number, got %T", p, raw)
		}
		return FloatValue(f), nil
	case VariantVector:
		pt, ok := toPoint(raw)
		if !ok {
			return Variant{}, fmt.Errorf("%s: want [x, y], got %v", p, raw)
		}
		return VectorValue(pt), nil
	case VariantBool:
		b, ok := raw.(bool)
		if !ok {
			return Variant{}, fmt.Errorf("%s: want bool, got %T", p, raw)
		}
		return BoolValue(b), nil
	case VariantString:
		s, ok := raw.(string)
		if !ok {
			return Variant{}, fmt.Errorf("%s: want string, got %T", p, raw)
		}
		return StringValue(s), nil
	}
	return Variant{}, fmt.Errorf("unknown property %d", int(p))
}
