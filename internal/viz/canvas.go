package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille pixel grid with a text overlay. Cells holding a
// marker dot are flagged so they can be colored separately.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	marked        [][]bool
	text          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		marked: make([][]bool, h),
		text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.marked[i] = make([]bool, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// SubSize is the canvas size in sub-pixels.
func (c *Canvas) SubSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Mark sets a pixel and flags its cell as a marker cell.
func (c *Canvas) Mark(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.marked[row][col] = true
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	col, row, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

func (c *Canvas) cell(x, y int) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return col, row, true
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.marked[i][j] = false
			c.text[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle marks every sub-pixel within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Mark(cx+dx, cy+dy)
			}
		}
	}
}

// Text overlays s starting at cell (col, row). Overlay runes replace the
// Braille cell underneath; anything past the right edge is dropped.
func (c *Canvas) Text(col, row int, s string) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.text[row][col] = r
		}
		col++
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if t := c.text[i][j]; t != 0 {
				r = t
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render is String with runs of plain, marker and overlay cells styled.
func (c *Canvas) Render(plain, mark, text lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		var run strings.Builder
		kind := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch kind {
			case 1:
				b.WriteString(mark.Render(run.String()))
			case 2:
				b.WriteString(text.Render(run.String()))
			default:
				b.WriteString(plain.Render(run.String()))
			}
			run.Reset()
		}
		for j, r := range row {
			k := 0
			if c.marked[i][j] {
				k = 1
			}
			if t := c.text[i][j]; t != 0 {
				r, k = t, 2
			}
			if k != kind {
				flush()
				kind = k
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
