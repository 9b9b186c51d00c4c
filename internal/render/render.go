// Package render turns the visible part of a file and the decoded scalars at
// the cursor into text cells with screen positions.
//
// A Frame is built from a Source and a View and holds the hex/ASCII rows and
// the interpretation panel as structured data. Cells flattens both into a
// list of positioned cells that any terminal painter can draw.
package render

import (
	"fmt"
	"strings"

	"hexinspect/internal/interp"
	"hexinspect/internal/layout"
)

// Unavailable is shown in place of scalars that run past the end of the file.
const Unavailable = "--"

// Placeholder replaces bytes without a printable ASCII form.
const Placeholder = '.'

// Source is the read side of a file buffer.
type Source interface {
	Size() int64
	GetBytes(offset int64, count int) []byte
}

// View is the navigation state the renderer needs.
type View interface {
	Cursor() int64
	Top() int64
	Rows() int
	BytesPerRow() int
	Endian() interp.Endianness
}

type ByteCell struct {
	Offset int64
	Hex    string
	ASCII  string
	Cursor bool
	// Window marks the bytes after the cursor that feed the wider scalars.
	Window bool
}

type HexRow struct {
	Offset  int64
	Address string
	Bytes   []ByteCell
}

type Field struct {
	Kind      interp.Kind
	Available bool
	Decimal   string
	Hex       string
}

type Panel struct {
	Offset   int64
	FileSize int64
	Endian   interp.Endianness
	Fields   []Field
}

func (p Panel) Field(k interp.Kind) Field {
	for _, f := range p.Fields {
		if f.Kind == k {
			return f
		}
	}
	return Field{Kind: k, Decimal: Unavailable, Hex: Unavailable}
}

type Frame struct {
	Grid     layout.Grid
	ViewRows int
	Rows     []HexRow
	Panel    Panel
}

func Build(src Source, v View) Frame {
	size := src.Size()
	bpr := v.BytesPerRow()
	cursor := v.Cursor()

	f := Frame{
		Grid:     layout.NewGrid(size, bpr),
		ViewRows: v.Rows(),
	}

	for _, r := range layout.Rows(size, bpr, v.Rows(), v.Top()) {
		f.Rows = append(f.Rows, buildRow(src, r, cursor, f.Grid.AddressWidth))
	}

	f.Panel = buildPanel(src.GetBytes(cursor, interp.MaxSize), cursor, size, v.Endian())
	return f
}

func buildRow(src Source, r layout.Row, cursor int64, addrWidth int) HexRow {
	data := src.GetBytes(r.Offset, r.Count)
	row := HexRow{
		Offset:  r.Offset,
		Address: fmt.Sprintf("%0*X", addrWidth, r.Offset),
		Bytes:   make([]ByteCell, 0, len(data)),
	}
	for i, b := range data {
		offset := r.Offset + int64(i)
		row.Bytes = append(row.Bytes, ByteCell{
			Offset: offset,
			Hex:    fmt.Sprintf("%02X", b),
			ASCII:  printable(b),
			Cursor: offset == cursor,
			Window: offset > cursor && offset < cursor+interp.MaxSize,
		})
	}
	return row
}

func printable(b byte) string {
	if b >= 32 && b < 127 {
		return string(rune(b))
	}
	return string(Placeholder)
}

func buildPanel(data []byte, cursor, size int64, e interp.Endianness) Panel {
	view := interp.Interpret(data, e)
	p := Panel{
		Offset:   cursor,
		FileSize: size,
		Endian:   e,
		Fields:   make([]Field, 0, len(view.Scalars)),
	}
	for _, s := range view.Scalars {
		field := Field{Kind: s.Kind, Available: s.Available, Decimal: Unavailable, Hex: Unavailable}
		if s.Available {
			field.Decimal = s.Decimal()
			field.Hex = s.Hex()
		}
		p.Fields = append(p.Fields, field)
	}
	return p
}

// Lines renders the frame as plain text, one string per screen line. It is
// the unstyled form of Cells.
func (f Frame) Lines() []string {
	var lines [][]byte
	for _, c := range f.Cells() {
		for len(lines) <= c.Y {
			lines = append(lines, nil)
		}
		line := lines[c.Y]
		for len(line) < c.X+len(c.Text) {
			line = append(line, ' ')
		}
		copy(line[c.X:], c.Text)
		lines[c.Y] = line
	}

	result := make([]string, len(lines))
	for i, l := range lines {
		result[i] = strings.TrimRight(string(l), " ")
	}
	return result
}
