package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tomz197/dodger/internal/physics"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Logical field coordinates are scaled to terminal sub-pixels.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets (columns/rows to skip) used to center the field.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Fit sizes and centers the canvas inside a terminal of termCols x termRows,
// keeping the logical aspect ratio. reservedRows at the top stay free for
// the HUD.
func (c *Canvas) Fit(termCols, termRows, reservedRows int) {
	availCols := max(termCols-2, 1) // Room for the side border
	availRows := max(termRows-reservedRows-2, 1)

	// A terminal cell is about twice as tall as wide, so a sub-pixel is square.
	scale := math.Min(float64(availCols)/c.logicalWidth, float64(availRows*2)/c.logicalHeight)
	cols := min(max(int(math.Round(c.logicalWidth*scale)), 1), availCols)
	rows := min(max(int(math.Round(c.logicalHeight*scale/2)), 1), availRows)

	c.Resize(cols, rows)
	c.SetOffset((termCols-cols)/2, reservedRows+(termRows-reservedRows-rows)/2)
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = max(col, 0)
	c.offsetRow = max(row, 0)
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// FillRect fills a logical rectangle. Parts outside the field are clipped.
func (c *Canvas) FillRect(r physics.Rect) {
	x0 := int(math.Floor(r.Left * c.scaleX))
	x1 := int(math.Ceil(r.Right*c.scaleX)) - 1
	y0 := int(math.Floor(r.Top * c.scaleY))
	y1 := int(math.Ceil(r.Bottom*c.scaleY)) - 1

	x0, x1 = max(x0, 0), min(x1, c.termWidth-1)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight-1)

	for y := y0; y <= y1; y++ {
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		for x := x0; x <= x1; x++ {
			row[x] = true
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	return writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box around the canvas area.
func (c *Canvas) RenderBorder(w io.Writer) error {
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*6 + c.termHeight*2*12)

	line := strings.Repeat("─", c.termWidth)
	if left >= 1 && top >= 1 {
		fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
	}
	if left >= 1 {
		fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		for row := top + 1; row < bottom; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	return writeChunked(w, buf.String())
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1 + c.offsetCol, py/2 + 1 + c.offsetRow
}

// writeChunked writes data in maxChunkSize pieces.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
