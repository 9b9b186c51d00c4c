package editor

import (
	"hexinspect/internal/render"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Title         lipgloss.Style
	Address       lipgloss.Style
	CursorAddress lipgloss.Style
	Cursor        lipgloss.Style
	Window        lipgloss.Style
	Normal        lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Endian        lipgloss.Style
	Disabled      lipgloss.Style
	Warning       lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Background(lipgloss.Color("#0000FF")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Address: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		CursorAddress: lipgloss.NewStyle().
			Background(lipgloss.Color("#000080")).
			Foreground(lipgloss.Color("#FFFFFF")),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color("#0000FF")).
			Foreground(lipgloss.Color("#FFFFFF")),
		Window: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFFF")),
		Normal: lipgloss.NewStyle(),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		Endian: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF00FF")).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),
	}
}

func (s *Styles) cell(c render.Cell) lipgloss.Style {
	switch c.Kind {
	case render.KindAddress:
		if c.Cursor {
			return s.CursorAddress
		}
		return s.Address
	case render.KindHex, render.KindASCII:
		if c.Cursor {
			return s.Cursor
		}
		if c.Window {
			return s.Window
		}
		return s.Normal
	case render.KindLabel:
		return s.Label
	case render.KindValue:
		return s.Value
	case render.KindUnavailable:
		return s.Disabled
	case render.KindEndian:
		return s.Endian
	}
	return s.Normal
}
