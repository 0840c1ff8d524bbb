package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"boxplay/pkg/engine/geom"
	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g == nil || g.Activity == nil || e.monoFontSource == nil {
		return
	}

	e.drawText(screen, renderer.Status(g), boardMargin, boardMargin, colorText)

	board := renderer.Board(g)
	e.drawBoardBackground(screen, board)
	for _, row := range board {
		for _, c := range row {
			e.drawCell(screen, c)
		}
	}
	if e.mouseDown || e.touching {
		e.drawDrag(screen)
	}

	bottom := e.boardBottom(board)
	bottom = e.drawWords(screen, bottom)
	e.drawMessages(screen, bottom)
}

// drawBoardBackground fills the area behind all cells
func (e *EbitenRenderer) drawBoardBackground(screen *ebiten.Image, board [][]renderer.Cell) {
	var w, h float64
	for _, row := range board {
		for _, c := range row {
			w = max(w, c.Rect.Pos.X+c.Rect.Dim.Width)
			h = max(h, c.Rect.Pos.Y+c.Rect.Dim.Height)
		}
	}
	if w == 0 || h == 0 {
		return
	}
	r := e.toScreen(geom.R(0, 0, w, h)).Grow(cellGap*2, cellGap*2)
	vector.DrawFilledRect(screen, float32(r.Pos.X), float32(r.Pos.Y), float32(r.Dim.Width), float32(r.Dim.Height), colorBoardBackground, false)
}

// drawCell draws one board cell with its text centered
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, c renderer.Cell) {
	r := e.toScreen(c.Rect).Grow(-cellGap, -cellGap)
	if r.IsEmpty() {
		return
	}
	fill, fg := cellColors(c.Style)
	x, y := float32(r.Pos.X), float32(r.Pos.Y)
	w, h := float32(r.Dim.Width), float32(r.Dim.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	if c.Focus {
		vector.StrokeRect(screen, x, y, w, h, 2, colorCursor, false)
	}
	if c.Text == "" || c.Style == renderer.StyleLocked {
		return
	}

	face := e.getCellFontFace(r.Dim.Height)
	label := c.Text
	for len(label) > 1 {
		tw, _ := text.Measure(label, face, 0)
		if tw <= r.Dim.Width-4 {
			break
		}
		label = string([]rune(label)[:len([]rune(label))-1])
	}
	tw, th := text.Measure(label, face, 0)
	center := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X-tw/2, center.Y-th/2)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(screen, label, face, op)
}

// drawDrag draws the line of a pointer gesture in progress
func (e *EbitenRenderer) drawDrag(screen *ebiten.Image) {
	from := e.toScreen(geom.Rect{Pos: e.dragFrom}).Pos
	to := e.toScreen(geom.Rect{Pos: e.lastPointer}).Pos
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 3, colorDrag, true)
}

// boardBottom returns the screen y just below the board
func (e *EbitenRenderer) boardBottom(board [][]renderer.Cell) float64 {
	bottom := e.boardOrigin().Y
	for _, row := range board {
		for _, c := range row {
			bottom = max(bottom, e.toScreen(c.Rect).Pos.Y+c.Rect.Dim.Height*e.zoom)
		}
	}
	return bottom + boardMargin
}

// drawWords lists the words of a word search, found ones dimmed
func (e *EbitenRenderer) drawWords(screen *ebiten.Image, y float64) float64 {
	words, found := renderer.Words(e.game)
	if len(words) == 0 {
		return y
	}
	face := e.getUIFontFace()
	x := float64(boardMargin)
	for i, w := range words {
		clr := color.Color(colorRevealed)
		if found[i] {
			clr = colorSubtle
		}
		e.drawText(screen, w, x, y, clr)
		tw, _ := text.Measure(w+"  ", face, 0)
		x += tw
	}
	return y + e.lineHeight() + boardMargin/2
}

// drawMessages draws the last messages under a title
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, y float64) {
	e.drawText(screen, gotext.Get("MESSAGES"), boardMargin, y, colorSubtle)
	y += e.lineHeight()
	msgs := e.game.Messages
	if len(msgs) == 0 {
		e.drawText(screen, gotext.Get("NO_MESSAGES"), boardMargin, y, colorSubtle)
		return
	}
	if len(msgs) > messageLines {
		msgs = msgs[len(msgs)-messageLines:]
	}
	for _, m := range msgs {
		e.drawText(screen, e.FormatText(strings.ReplaceAll(m, "%", "%%")), boardMargin, y, colorText)
		y += e.lineHeight()
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.getUIFontFace(), op)
}

func (e *EbitenRenderer) lineHeight() float64 {
	_, h := text.Measure("Ag", e.getUIFontFace(), 0)
	return h * 1.4
}

// kindLabel is used as the window title while playing
func kindLabel(k activity.Kind, puzzle string) string {
	if puzzle == "" {
		return "boxplay: " + k.String()
	}
	return "boxplay: " + k.String() + " / " + puzzle
}
