// Package session holds the navigation state of one inspection session and
// applies navigation commands to it.
//
// The state keeps two invariants after every command and every resize:
//
//   - the cursor lies in [0, max(size,1))
//   - the cursor's row lies in [top, top+rows)
package session

import (
	"hexinspect/internal/interp"
	"hexinspect/internal/layout"
	"hexinspect/internal/logging"

	"go.uber.org/zap"
)

type Options struct {
	BytesPerRow int
	Rows        int
	Endian      interp.Endianness
	// Offset is the initial cursor position, clamped to the file.
	Offset int64
}

type State struct {
	size        int64
	bytesPerRow int
	rows        int

	cursor int64
	top    int64 // row index of the first visible row
	endian interp.Endianness
	quit   bool
}

func New(size int64, opts Options) *State {
	if opts.BytesPerRow <= 0 {
		opts.BytesPerRow = layout.DefaultBytesPerRow
	}
	if opts.Rows < 1 {
		opts.Rows = 1
	}
	if size < 0 {
		size = 0
	}

	s := &State{
		size:        size,
		bytesPerRow: opts.BytesPerRow,
		rows:        opts.Rows,
		endian:      opts.Endian,
	}
	s.setCursor(opts.Offset)
	return s
}

func (s *State) Size() int64               { return s.size }
func (s *State) Cursor() int64             { return s.cursor }
func (s *State) Top() int64                { return s.top }
func (s *State) TopOffset() int64          { return s.top * int64(s.bytesPerRow) }
func (s *State) Rows() int                 { return s.rows }
func (s *State) BytesPerRow() int          { return s.bytesPerRow }
func (s *State) Endian() interp.Endianness { return s.endian }
func (s *State) Quitting() bool            { return s.quit }

// VisibleRows describes the rows currently inside the viewport.
func (s *State) VisibleRows() []layout.Row {
	return layout.Rows(s.size, s.bytesPerRow, s.rows, s.top)
}

func (s *State) CursorRow() int64 {
	return layout.RowOf(s.cursor, s.bytesPerRow)
}

func (s *State) pageBytes() int64 {
	return int64(s.rows) * int64(s.bytesPerRow)
}

// Apply runs one command and reports whether the session has quit. Once quit,
// further commands are ignored.
func (s *State) Apply(cmd Command) bool {
	if s.quit {
		return true
	}

	switch cmd {
	case MoveLeft:
		s.setCursor(s.cursor - 1)
	case MoveRight:
		s.setCursor(s.cursor + 1)
	case MoveUp:
		s.setCursor(s.cursor - int64(s.bytesPerRow))
	case MoveDown:
		s.setCursor(s.cursor + int64(s.bytesPerRow))
	case PageUp:
		s.setCursor(s.cursor - s.pageBytes())
	case PageDown:
		s.setCursor(s.cursor + s.pageBytes())
	case Home:
		s.setCursor(0)
	case End:
		s.setCursor(s.size - 1)
	case ToggleEndian:
		s.endian = s.endian.Flip()
	case SetLittle:
		s.endian = interp.Little
	case SetBig:
		s.endian = interp.Big
	case Quit:
		s.quit = true
	}

	logging.Debug("Command applied",
		zap.Stringer("command", cmd),
		zap.Int64("cursor", s.cursor),
		zap.Int64("top", s.top),
		zap.Stringer("endian", s.endian),
	)
	return s.quit
}

// Resize changes the number of visible rows and scrolls the viewport as little
// as needed to keep the cursor visible. The cursor itself never moves.
func (s *State) Resize(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.rows = rows
	s.ensureCursorVisible()

	logging.Debug("Viewport resized",
		zap.Int("rows", rows),
		zap.Int64("cursor", s.cursor),
		zap.Int64("top", s.top),
	)
}

func (s *State) setCursor(pos int64) {
	if s.size == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > s.size-1 {
		pos = s.size - 1
	}
	s.cursor = pos
	s.ensureCursorVisible()
}

func (s *State) ensureCursorVisible() {
	cursorRow := s.CursorRow()
	if cursorRow < s.top {
		s.top = cursorRow
	} else if cursorRow > s.top+int64(s.rows)-1 {
		s.top = cursorRow - int64(s.rows) + 1
	}

	maxTop := layout.LastRow(s.size, s.bytesPerRow) - int64(s.rows) + 1
	if maxTop < 0 {
		maxTop = 0
	}
	if s.top > maxTop {
		s.top = maxTop
	}
	if s.top < 0 {
		s.top = 0
	}
}
