package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableWriter returns the panel as a table.Writer for printing outside the
// interactive viewer.
func (p Panel) TableWriter() table.Writer {
	tw := table.NewWriter()

	tw.SetTitle(fmt.Sprintf("offset 0x%X (%d) of %d bytes, %s endian", p.Offset, p.Offset, p.FileSize, p.Endian))
	tw.AppendHeader(table.Row{"TYPE", "DECIMAL", "HEX"})
	for _, f := range p.Fields {
		tw.AppendRow(table.Row{f.Kind.String(), f.Decimal, f.Hex})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	tw.SetStyle(table.StyleLight)

	return tw
}
