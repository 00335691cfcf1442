package tetris

import (
	"image/color"
	"strings"
)

// Surface is where the engine draws. The board surface is Cols x Rows
// cells, the preview surface is 4 x 4.
type Surface interface {
	Clear()
	DrawCell(col, row int, c color.Color, ghost bool)
}

// RasterCell is one cell of a Raster.
type RasterCell struct {
	Filled bool
	Ghost  bool
	Color  color.Color
}

// Raster is an in-memory Surface.
type Raster struct {
	cols, rows int
	cells      []RasterCell
}

// NewRaster creates an empty raster.
func NewRaster(cols, rows int) *Raster {
	return &Raster{cols: cols, rows: rows, cells: make([]RasterCell, cols*rows)}
}

// Size returns the raster dimensions in cells.
func (r *Raster) Size() (cols, rows int) {
	return r.cols, r.rows
}

// Clear empties every cell.
func (r *Raster) Clear() {
	clear(r.cells)
}

// DrawCell paints one cell. Out-of-range cells are ignored.
// A ghost never covers a solid cell.
func (r *Raster) DrawCell(col, row int, c color.Color, ghost bool) {
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return
	}
	cell := &r.cells[row*r.cols+col]
	if ghost && cell.Filled && !cell.Ghost {
		return
	}
	*cell = RasterCell{Filled: true, Ghost: ghost, Color: c}
}

// At returns the cell at (col, row).
func (r *Raster) At(col, row int) RasterCell {
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return RasterCell{}
	}
	return r.cells[row*r.cols+col]
}

// String renders the raster as text: '#' solid, 'o' ghost, '.' empty.
func (r *Raster) String() string {
	var sb strings.Builder
	for row := 0; row < r.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < r.cols; col++ {
			c := r.At(col, row)
			switch {
			case c.Filled && c.Ghost:
				sb.WriteByte('o')
			case c.Filled:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
