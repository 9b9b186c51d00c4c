// Package layout maps file offsets onto the rows and columns of the hex grid.
//
// Everything here is a pure function of the file size, the row geometry and
// the viewport, so the viewport arithmetic can be checked without a terminal.
package layout

const (
	DefaultBytesPerRow = 16
	MaxBytesPerRow     = 64

	// GroupSize is the number of hex pairs between the wider gaps of a line.
	GroupSize = 8

	// PanelHeight is the number of lines used by the interpretation panel.
	PanelHeight = 7

	// Lines of chrome around the grid: title, separator above the panel and
	// the help footer.
	titleHeight     = 1
	separatorHeight = 1
	footerHeight    = 1
)

type Row struct {
	Offset int64
	Count  int
}

// Rows returns the descriptors of the rows visible from row index top. The
// last row may be partial. An empty file has no rows.
func Rows(n int64, bytesPerRow, rows int, top int64) []Row {
	if n <= 0 || bytesPerRow <= 0 || rows <= 0 || top < 0 {
		return nil
	}
	bpr := int64(bytesPerRow)
	start := top * bpr
	end := (top + int64(rows)) * bpr
	if end > n {
		end = n
	}

	var result []Row
	for off := start; off < end; off += bpr {
		count := bpr
		if off+count > n {
			count = n - off
		}
		result = append(result, Row{Offset: off, Count: int(count)})
	}
	return result
}

func RowOf(offset int64, bytesPerRow int) int64 {
	if bytesPerRow <= 0 {
		return 0
	}
	return offset / int64(bytesPerRow)
}

// LastRow is the index of the row holding the final byte, 0 for an empty file.
func LastRow(n int64, bytesPerRow int) int64 {
	if n <= 0 {
		return 0
	}
	return RowOf(n-1, bytesPerRow)
}

// AddressWidth is the number of hex digits used for row addresses: 8, or
// enough for the highest offset of files past 4 GiB.
func AddressWidth(n int64) int {
	width := 8
	last := n - 1
	for last>>(uint(width)*4) > 0 {
		width++
	}
	return width
}

// MinHeight is the smallest terminal height that shows at least one grid row.
const MinHeight = titleHeight + 1 + separatorHeight + PanelHeight + footerHeight

// ViewRows is how many grid rows fit a terminal of the given height.
func ViewRows(height int) int {
	rows := height - titleHeight - separatorHeight - PanelHeight - footerHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Grid describes the column geometry of one hex line:
//
//	00000010  4E 47 0D 0A 1A 0A 00 00  00 0D 49 48 44 52 00 00  NG........IHDR..
type Grid struct {
	BytesPerRow  int
	AddressWidth int
}

func NewGrid(n int64, bytesPerRow int) Grid {
	return Grid{BytesPerRow: bytesPerRow, AddressWidth: AddressWidth(n)}
}

func (g Grid) hexStart() int {
	return g.AddressWidth + 2
}

func (g Grid) hexWidth() int {
	if g.BytesPerRow <= 0 {
		return 0
	}
	return g.BytesPerRow*3 - 1 + (g.BytesPerRow-1)/GroupSize
}

// HexColumn is the screen column of the first hex digit of byte col.
func (g Grid) HexColumn(col int) int {
	return g.hexStart() + col*3 + col/GroupSize
}

// ASCIIColumn is the screen column of the character for byte col.
func (g Grid) ASCIIColumn(col int) int {
	return g.hexStart() + g.hexWidth() + 2 + col
}

// Width is the total length of a full line.
func (g Grid) Width() int {
	return g.ASCIIColumn(g.BytesPerRow)
}
