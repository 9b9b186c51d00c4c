package render

import (
	"fmt"

	"hexinspect/internal/interp"
	"hexinspect/internal/layout"
)

type CellKind int

const (
	KindAddress CellKind = iota
	KindHex
	KindASCII
	KindLabel
	KindValue
	KindUnavailable
	KindEndian
)

// Cell is a run of text at a screen position relative to the top-left corner
// of the frame. Cursor marks the cells that belong to the cursor byte (and
// the address of its row); Window marks bytes decoded along with it.
type Cell struct {
	X, Y   int
	Text   string
	Kind   CellKind
	Cursor bool
	Window bool
}

// Panel columns.
const (
	labelX     = 2
	valueX     = 7
	pairLabelX = 29
	pairValueX = 34
	hexX       = 56

	// PanelWidth is the widest panel line for files below 4 GiB.
	PanelWidth = hexX + 2 + 2*interp.MaxSize
)

var scalarPairs = [][2]interp.Kind{
	{interp.I8, interp.U8},
	{interp.I16, interp.U16},
	{interp.I32, interp.U32},
	{interp.I64, interp.U64},
}

// Width is the number of columns the frame needs.
func (f Frame) Width() int {
	if w := f.Grid.Width(); w > PanelWidth {
		return w
	}
	return PanelWidth
}

// Height is the number of lines the frame occupies.
func (f Frame) Height() int {
	return f.ViewRows + 1 + layout.PanelHeight
}

// Cells flattens the frame. Grid rows occupy lines [0, ViewRows), one blank
// separator line follows, then the panel. Cells of one line are in column
// order.
func (f Frame) Cells() []Cell {
	var cells []Cell
	for y, row := range f.Rows {
		cells = append(cells, f.rowCells(y, row)...)
	}
	cells = append(cells, f.panelCells(f.ViewRows+1)...)
	return cells
}

func (f Frame) rowCells(y int, row HexRow) []Cell {
	cells := make([]Cell, 0, 1+2*len(row.Bytes))

	cursorRow := false
	for _, b := range row.Bytes {
		cursorRow = cursorRow || b.Cursor
	}
	cells = append(cells, Cell{X: 0, Y: y, Text: row.Address, Kind: KindAddress, Cursor: cursorRow})

	for col, b := range row.Bytes {
		cells = append(cells, Cell{X: f.Grid.HexColumn(col), Y: y, Text: b.Hex, Kind: KindHex, Cursor: b.Cursor, Window: b.Window})
	}
	for col, b := range row.Bytes {
		cells = append(cells, Cell{X: f.Grid.ASCIIColumn(col), Y: y, Text: b.ASCII, Kind: KindASCII, Cursor: b.Cursor, Window: b.Window})
	}
	return cells
}

func (f Frame) panelCells(y int) []Cell {
	p := f.Panel
	var cells []Cell

	// offset, file size and byte order share the first line
	x := labelX
	put := func(text string, kind CellKind) {
		cells = append(cells, Cell{X: x, Y: y, Text: text, Kind: kind})
		x += len(text) + 1
	}
	put("offset:", KindLabel)
	put(fmt.Sprintf("0x%0*X", f.Grid.AddressWidth, p.Offset), KindValue)
	put(fmt.Sprintf("(%d)", p.Offset), KindValue)
	x++
	put("size:", KindLabel)
	put(fmt.Sprintf("%d", p.FileSize), KindValue)
	x++
	put(p.Endian.String()+" endian", KindEndian)

	for i, pair := range scalarPairs {
		line := y + 1 + i
		signed, unsigned := p.Field(pair[0]), p.Field(pair[1])
		cells = append(cells, fieldCells(line, labelX, valueX, signed)...)
		cells = append(cells, fieldCells(line, pairLabelX, pairValueX, unsigned)...)
		cells = append(cells, hexCell(line, unsigned))
	}

	for i, k := range []interp.Kind{interp.F32, interp.F64} {
		line := y + 1 + len(scalarPairs) + i
		field := p.Field(k)
		cells = append(cells, fieldCells(line, labelX, valueX, field)...)
		cells = append(cells, hexCell(line, field))
	}
	return cells
}

func fieldCells(y, labelCol, valueCol int, field Field) []Cell {
	kind := KindValue
	if !field.Available {
		kind = KindUnavailable
	}
	return []Cell{
		{X: labelCol, Y: y, Text: field.Kind.String() + ":", Kind: KindLabel},
		{X: valueCol, Y: y, Text: field.Decimal, Kind: kind},
	}
}

func hexCell(y int, field Field) Cell {
	kind := KindValue
	if !field.Available {
		kind = KindUnavailable
	}
	return Cell{X: hexX, Y: y, Text: field.Hex, Kind: kind}
}
