package eui

var (
	// DebugMode outlines every control when painting and logs events no
	// window handles.
	DebugMode bool

	debugOutline = Color{R: 255, G: 0, B: 255, A: 160}
)
