package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hook-miner/component"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSky        = tcell.NewRGBColor(36, 40, 59)    // Surface band
	RgbGround     = tcell.NewRGBColor(45, 32, 22)    // Dirt
	RgbRope       = tcell.NewRGBColor(180, 180, 180) // Light gray
	RgbHook       = tcell.NewRGBColor(255, 255, 255) // White
	RgbMiner      = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbGold    = tcell.NewRGBColor(255, 215, 0)
	RgbRock    = tcell.NewRGBColor(140, 130, 120)
	RgbDiamond = tcell.NewRGBColor(120, 220, 255)
	RgbBomb    = tcell.NewRGBColor(255, 60, 60)
	RgbRainbow = tcell.NewRGBColor(255, 105, 180)
	RgbMystery = tcell.NewRGBColor(180, 120, 255)

	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBg      = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbTargetBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbTimeBg       = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbTimeLowBg    = tcell.NewRGBColor(200, 50, 50)   // Red under ten seconds
	RgbLevelBg      = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbOverlayBg    = tcell.NewRGBColor(15, 15, 25)
	RgbOverlayTitle = tcell.NewRGBColor(255, 215, 0)
	RgbOverlayText  = tcell.NewRGBColor(220, 220, 220)
)

// ItemColor returns the display color for kind
func ItemColor(kind component.Kind) tcell.Color {
	switch component.Lookup(kind).Tag {
	case "gold":
		return RgbGold
	case "diamond":
		return RgbDiamond
	case "bomb":
		return RgbBomb
	case "rainbow":
		return RgbRainbow
	case "mystery":
		return RgbMystery
	}
	return RgbRock
}
