package core

import (
	"math"
	"strings"
)

// Font selects one of the two text sizes the game uses.
type Font int

const (
	FontMain  Font = iota // HUD and prompts
	FontLarge             // Titles and final score
)

// Surface is the fixed-size display every frame is drawn onto.
// Coordinates are logical units in [0, DisplayWidth] x [0, DisplayHeight].
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// Fill paints the whole surface.
	Fill(c Color)

	// FillCircle paints a filled circle.
	FillCircle(center Vec, radius float64, c Color)

	// DrawText draws text with its bounding box's top-left corner at pos.
	DrawText(text string, pos Vec, font Font, c Color)

	// MeasureText returns the size of the text's bounding box.
	MeasureText(text string, font Font) (w, h float64)
}

// DrawTextCentered draws text horizontally centered on dst and vertically
// centered at the middle of dst plus offsetY.
func DrawTextCentered(dst Surface, text string, font Font, c Color, offsetY float64) {
	sw, sh := dst.Size()
	tw, th := dst.MeasureText(text, font)
	dst.DrawText(text, V(sw/2-tw/2, sh/2+offsetY-th/2), font, c)
}

// CellSurface rasterizes the logical display onto a terminal Screen.
// Each cell stands for a DisplayWidth/cols by DisplayHeight/rows block.
type CellSurface struct {
	screen *Screen
}

// NewCellSurface wraps a screen buffer.
func NewCellSurface(s *Screen) *CellSurface {
	return &CellSurface{screen: s}
}

// Screen returns the underlying buffer.
func (c *CellSurface) Screen() *Screen {
	return c.screen
}

// cellSize returns the logical size of one cell.
func (c *CellSurface) cellSize() (w, h float64) {
	return DisplayWidth / float64(max(c.screen.Width(), 1)),
		DisplayHeight / float64(max(c.screen.Height(), 1))
}

// Size returns the logical display size regardless of the terminal size.
func (c *CellSurface) Size() (w, h float64) {
	return DisplayWidth, DisplayHeight
}

// Fill paints every cell's background.
func (c *CellSurface) Fill(col Color) {
	c.screen.Fill(Cell{Rune: ' ', Fg: col, Bg: col})
}

// FillCircle paints every cell whose center lies within the circle, so the
// painted cells match the cells a click would hit.
func (c *CellSurface) FillCircle(center Vec, radius float64, col Color) {
	cw, ch := c.cellSize()
	x0 := int(math.Floor((center.X - radius) / cw))
	x1 := int(math.Ceil((center.X + radius) / cw))
	y0 := int(math.Floor((center.Y - radius) / ch))
	y1 := int(math.Ceil((center.Y + radius) / ch))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.ToLogical(x, y).Dist(center) <= radius {
				c.screen.Set(x, y, Cell{Rune: ' ', Fg: col, Bg: col})
			}
		}
	}
}

// DrawText writes the text on the row nearest to its vertical center.
func (c *CellSurface) DrawText(text string, pos Vec, font Font, col Color) {
	cw, ch := c.cellSize()
	x0 := int(math.Floor(pos.X/cw + 0.5))
	y := int(math.Floor(pos.Y/ch + 0.5))
	for i, r := range []rune(layoutText(text, font)) {
		c.screen.SetRune(x0+i, y, r, col)
	}
}

// MeasureText returns one cell per rune and a single row of height.
func (c *CellSurface) MeasureText(text string, font Font) (w, h float64) {
	cw, ch := c.cellSize()
	return float64(len([]rune(layoutText(text, font)))) * cw, ch
}

// ToLogical maps a cell to the logical coordinate of its center.
func (c *CellSurface) ToLogical(col, row int) Vec {
	cw, ch := c.cellSize()
	return V((float64(col)+0.5)*cw, (float64(row)+0.5)*ch)
}

// layoutText spaces out large text, the only way a terminal can make it bigger.
func layoutText(text string, font Font) string {
	if font != FontLarge {
		return text
	}
	runes := []rune(text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
