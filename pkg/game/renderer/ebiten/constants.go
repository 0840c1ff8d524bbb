package ebiten

import (
	"image/color"

	"boxplay/pkg/game/renderer"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoardBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board area
	colorHidden          = color.RGBA{60, 60, 80, 255}    // Face down cell
	colorRevealed        = color.RGBA{100, 150, 255, 255} // Face up cell
	colorSolved          = color.RGBA{40, 80, 40, 255}    // Matched cell
	colorSelected        = color.RGBA{255, 200, 100, 255} // Pending pick
	colorLocked          = color.RGBA{10, 10, 16, 255}    // Black crossword cell
	colorMarked          = color.RGBA{0, 160, 90, 255}    // Found word
	colorCell            = color.RGBA{100, 100, 120, 255} // Plain cell
	colorCursor          = color.RGBA{0, 255, 255, 255}   // Keyboard cursor frame
	colorDrag            = color.RGBA{255, 255, 0, 255}   // Line of a drag in progress
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorTextDark        = color.RGBA{20, 20, 30, 255}    // Text on bright cells
)

// Layout sizes in pixels
const (
	boardMargin  = 24
	headerHeight = 40
	cellGap      = 2
	baseFontSize = 16.0
	minFontSize  = 10.0
	messageLines = 5
)

// Board zoom limits
const (
	minZoom  = 0.5
	maxZoom  = 3.0
	zoomStep = 0.25
)

// cellColors returns the fill and text colors for a board cell style
func cellColors(style renderer.TextStyle) (fill, fg color.Color) {
	switch style {
	case renderer.StyleHidden:
		return colorHidden, colorSubtle
	case renderer.StyleRevealed:
		return colorRevealed, colorTextDark
	case renderer.StyleSolved:
		return colorSolved, colorText
	case renderer.StyleSelected, renderer.StyleCursor:
		return colorSelected, colorTextDark
	case renderer.StyleLocked:
		return colorLocked, colorLocked
	case renderer.StyleMarked:
		return colorMarked, colorText
	default:
		return colorCell, colorText
	}
}
