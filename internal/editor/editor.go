package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"hexinspect/internal/buffer"
	"hexinspect/internal/layout"
	"hexinspect/internal/logging"
	"hexinspect/internal/render"
	"hexinspect/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type Model struct {
	buf    *buffer.Buffer
	state  *session.State
	keys   keyMap
	help   help.Model
	styles *Styles
	width  int
	height int
}

// NewModel starts a session over buf. The viewport height is set by the first
// window size message.
func NewModel(buf *buffer.Buffer, opts session.Options) *Model {
	if opts.Rows < 1 {
		opts.Rows = 1
	}
	return &Model{
		buf:    buf,
		state:  session.New(buf.Size(), opts),
		keys:   newKeyMap(),
		help:   help.New(),
		styles: NewStyles(),
	}
}

// State exposes the navigation state.
func (m *Model) State() *session.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	cmd, ok := m.keys.resolve(msg)
	if !ok {
		return m, nil
	}
	if m.state.Apply(cmd) {
		logging.Info("Session ended",
			zap.String("path", m.buf.Filename()),
			zap.Int64("cursor", m.state.Cursor()),
		)
		return m, tea.Quit
	}
	return m, nil
}

// resize fits the grid between the title, the panel and the (possibly
// expanded) help footer.
func (m *Model) resize() {
	if m.height == 0 {
		return
	}
	m.state.Resize(layout.ViewRows(m.height - m.helpExtra()))
	logging.Debug("Terminal resized",
		zap.Int("width", m.width),
		zap.Int("height", m.height),
		zap.Int("rows", m.state.Rows()),
	)
}

// helpExtra is the number of footer lines beyond the single line the layout
// budgets for.
func (m *Model) helpExtra() int {
	return lipgloss.Height(m.help.View(m.keys)) - 1
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	frame := render.Build(m.buf, m.state)
	minHeight := layout.MinHeight + m.helpExtra()
	if m.width < frame.Width() || m.height < minHeight {
		return m.renderTooSmall(frame.Width(), minHeight)
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.paint(frame))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderTitle() string {
	name := m.buf.Filename()
	if name == "" {
		name = "[stdin]"
	} else {
		name = filepath.Base(name)
	}
	title := fmt.Sprintf(" %s  %d bytes", name, m.buf.Size())
	if m.buf.Size() == 0 {
		title += "  (empty file)"
	}
	return m.styles.Title.Width(m.width).Render(title)
}

// paint draws the frame's cells line by line.
func (m *Model) paint(frame render.Frame) string {
	lines := make([]strings.Builder, frame.Height())
	cols := make([]int, frame.Height())

	for _, c := range frame.Cells() {
		if c.Y < 0 || c.Y >= len(lines) {
			continue
		}
		if pad := c.X - cols[c.Y]; pad > 0 {
			lines[c.Y].WriteString(strings.Repeat(" ", pad))
		}
		lines[c.Y].WriteString(m.styles.cell(c).Render(c.Text))
		cols[c.Y] = c.X + len(c.Text)
	}

	out := make([]string, len(lines))
	for i := range lines {
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderTooSmall(needWidth, needHeight int) string {
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.", needWidth, needHeight, m.width, m.height)
	return m.styles.Warning.Render(msg) + "\n" + m.help.View(m.keys)
}
