package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the embedded Go Mono font
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.monoFontSource = src
	e.invalidateFontCache()
	return nil
}

// getCellFontSize returns the font size for board cells, scaled to the cell height
func (e *EbitenRenderer) getCellFontSize(cellHeight float64) float64 {
	return max(minFontSize, min(baseFontSize*1.5, cellHeight*0.45))
}

// getCellFontFace returns a cached face for board cells
func (e *EbitenRenderer) getCellFontFace(cellHeight float64) *text.GoTextFace {
	size := e.getCellFontSize(cellHeight)
	if e.cachedCellFace == nil || e.cachedCellFontSize != size {
		e.cachedCellFontSize = size
		e.cachedCellFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedCellFace
}

// getUIFontFace returns a cached face for the status line and messages
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedUIFace
}

// invalidateFontCache clears cached font faces
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedCellFace = nil
	e.cachedUIFace = nil
}
