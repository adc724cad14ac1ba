package parameter

// Logical playfield in canvas units; renderers scale it to their surface
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0

	// HookOriginY is the pivot height; the pivot is centered horizontally
	HookOriginY = 50.0

	// SkyLine separates the surface band from the dirt in the presentation layer
	SkyLine = 100.0
)
