package session

import (
	"math/rand"
	"testing"

	"hexinspect/internal/interp"
)

func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	limit := s.Size()
	if limit < 1 {
		limit = 1
	}
	if s.Cursor() < 0 || s.Cursor() >= limit {
		t.Fatalf("cursor %d outside [0, %d)", s.Cursor(), limit)
	}
	row := s.CursorRow()
	if row < s.Top() || row >= s.Top()+int64(s.Rows()) {
		t.Fatalf("cursor row %d outside viewport [%d, %d)", row, s.Top(), s.Top()+int64(s.Rows()))
	}
	if s.TopOffset()%int64(s.BytesPerRow()) != 0 {
		t.Fatalf("top offset %d not aligned to %d", s.TopOffset(), s.BytesPerRow())
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(100, Options{})
	if s.Cursor() != 0 || s.Top() != 0 {
		t.Errorf("expected cursor and top at 0, got %d and %d", s.Cursor(), s.Top())
	}
	if s.BytesPerRow() != 16 {
		t.Errorf("expected 16 bytes per row, got %d", s.BytesPerRow())
	}
	if s.Rows() != 1 {
		t.Errorf("expected at least one row, got %d", s.Rows())
	}
	if s.Endian() != interp.Little {
		t.Errorf("expected little endian, got %s", s.Endian())
	}
}

func TestNewInitialOffset(t *testing.T) {
	s := New(1000, Options{Rows: 4, Offset: 500})
	if s.Cursor() != 500 {
		t.Errorf("expected cursor 500, got %d", s.Cursor())
	}
	checkInvariants(t, s)

	s = New(10, Options{Rows: 4, Offset: 99})
	if s.Cursor() != 9 {
		t.Errorf("expected cursor clamped to 9, got %d", s.Cursor())
	}
}

func TestHorizontalMoves(t *testing.T) {
	s := New(3, Options{Rows: 4})

	s.Apply(MoveLeft)
	if s.Cursor() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", s.Cursor())
	}
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	if s.Cursor() != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", s.Cursor())
	}
	s.Apply(MoveLeft)
	if s.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", s.Cursor())
	}
}

func TestVerticalMoves(t *testing.T) {
	s := New(40, Options{Rows: 2, BytesPerRow: 16})

	s.Apply(MoveRight)
	s.Apply(MoveDown)
	if s.Cursor() != 17 {
		t.Errorf("expected cursor 17, got %d", s.Cursor())
	}
	s.Apply(MoveDown)
	if s.Cursor() != 33 {
		t.Errorf("expected cursor 33, got %d", s.Cursor())
	}
	if s.Top() != 1 {
		t.Errorf("expected viewport to scroll to row 1, got %d", s.Top())
	}
	s.Apply(MoveDown)
	if s.Cursor() != 39 {
		t.Errorf("expected cursor clamped to 39, got %d", s.Cursor())
	}
	s.Apply(MoveUp)
	s.Apply(MoveUp)
	s.Apply(MoveUp)
	if s.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", s.Cursor())
	}
	if s.Top() != 0 {
		t.Errorf("expected viewport back at row 0, got %d", s.Top())
	}
}

func TestPaging(t *testing.T) {
	s := New(1000, Options{Rows: 4, BytesPerRow: 16})

	s.Apply(PageDown)
	if s.Cursor() != 64 {
		t.Errorf("expected cursor 64, got %d", s.Cursor())
	}
	checkInvariants(t, s)

	for i := 0; i < 100; i++ {
		s.Apply(PageDown)
	}
	if s.Cursor() != 999 {
		t.Errorf("expected cursor at last byte, got %d", s.Cursor())
	}
	checkInvariants(t, s)

	s.Apply(PageUp)
	if s.Cursor() != 935 {
		t.Errorf("expected cursor 935, got %d", s.Cursor())
	}
	checkInvariants(t, s)
}

func TestHomeEnd(t *testing.T) {
	s := New(1000, Options{Rows: 5, BytesPerRow: 16})

	s.Apply(End)
	if s.Cursor() != 999 {
		t.Errorf("expected cursor 999, got %d", s.Cursor())
	}
	if s.Top() != 62-5+1 {
		t.Errorf("expected top row %d, got %d", 62-5+1, s.Top())
	}
	checkInvariants(t, s)

	s.Apply(Home)
	if s.Cursor() != 0 || s.Top() != 0 {
		t.Errorf("expected cursor and top at 0, got %d and %d", s.Cursor(), s.Top())
	}
	checkInvariants(t, s)

	s.Apply(End)
	if s.Cursor() != 999 {
		t.Errorf("expected cursor 999 again, got %d", s.Cursor())
	}
	checkInvariants(t, s)
}

func TestEndianCommands(t *testing.T) {
	s := New(8, Options{})

	s.Apply(ToggleEndian)
	if s.Endian() != interp.Big {
		t.Errorf("expected big endian, got %s", s.Endian())
	}
	s.Apply(ToggleEndian)
	if s.Endian() != interp.Little {
		t.Errorf("expected little endian, got %s", s.Endian())
	}
	s.Apply(SetBig)
	s.Apply(SetBig)
	if s.Endian() != interp.Big {
		t.Errorf("expected big endian, got %s", s.Endian())
	}
}

func TestSetLittleIsIdempotent(t *testing.T) {
	s := New(100, Options{Rows: 3})
	s.Apply(MoveDown)

	s.Apply(SetLittle)
	before := *s
	s.Apply(SetLittle)
	s.Apply(SetLittle)
	if *s != before {
		t.Errorf("expected state unchanged, got %+v want %+v", *s, before)
	}
}

func TestQuit(t *testing.T) {
	s := New(100, Options{Rows: 3})

	if s.Apply(MoveRight) {
		t.Error("expected move to keep running")
	}
	if !s.Apply(Quit) {
		t.Error("expected quit to stop the session")
	}
	if !s.Quitting() {
		t.Error("expected Quitting to be true")
	}
	if !s.Apply(MoveRight) || s.Cursor() != 1 {
		t.Errorf("expected commands after quit to be ignored, cursor %d", s.Cursor())
	}
}

func TestEmptyFile(t *testing.T) {
	s := New(0, Options{Rows: 4})

	for _, cmd := range []Command{MoveRight, MoveDown, PageDown, End, MoveLeft, Home, PageUp} {
		s.Apply(cmd)
		if s.Cursor() != 0 || s.Top() != 0 {
			t.Fatalf("%s: expected no-op on empty file, got cursor %d top %d", cmd, s.Cursor(), s.Top())
		}
	}
	if len(s.VisibleRows()) != 0 {
		t.Errorf("expected no rows, got %v", s.VisibleRows())
	}
	s.Resize(1)
	checkInvariants(t, s)
}

func TestResizeKeepsCursor(t *testing.T) {
	s := New(1000, Options{Rows: 20, BytesPerRow: 16})
	for i := 0; i < 15; i++ {
		s.Apply(MoveDown)
	}
	if s.Top() != 0 {
		t.Fatalf("expected no scroll yet, got top %d", s.Top())
	}

	cursor := s.Cursor()
	s.Resize(5)
	if s.Cursor() != cursor {
		t.Errorf("expected cursor %d unchanged, got %d", cursor, s.Cursor())
	}
	if s.Top() != 11 {
		t.Errorf("expected top 11, got %d", s.Top())
	}
	checkInvariants(t, s)

	s.Resize(0)
	if s.Rows() != 1 || s.Top() != 15 {
		t.Errorf("expected single row at 15, got rows %d top %d", s.Rows(), s.Top())
	}
	checkInvariants(t, s)
}

func TestResizeGrowPullsViewportBack(t *testing.T) {
	s := New(160, Options{Rows: 2, BytesPerRow: 16})
	s.Apply(End)
	if s.Top() != 8 {
		t.Fatalf("expected top 8, got %d", s.Top())
	}

	s.Resize(50)
	if s.Top() != 0 {
		t.Errorf("expected top clamped to 0 when everything fits, got %d", s.Top())
	}
	if s.Cursor() != 159 {
		t.Errorf("expected cursor 159, got %d", s.Cursor())
	}
}

func TestRandomCommandsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := []Command{MoveLeft, MoveRight, MoveUp, MoveDown, PageUp, PageDown, Home, End, ToggleEndian}

	for _, size := range []int64{0, 1, 15, 16, 17, 255, 4096, 100003} {
		for _, bpr := range []int{1, 8, 16, 32} {
			s := New(size, Options{Rows: 1 + rng.Intn(30), BytesPerRow: bpr})
			for i := 0; i < 500; i++ {
				if rng.Intn(10) == 0 {
					s.Resize(rng.Intn(40))
				} else {
					s.Apply(moves[rng.Intn(len(moves))])
				}
				checkInvariants(t, s)
			}
		}
	}
}

func TestCommandString(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands {
		name := c.String()
		if seen[name] {
			t.Errorf("duplicate command name %q", name)
		}
		seen[name] = true
	}
	if Quit.String() != "quit" {
		t.Errorf("expected quit, got %s", Quit.String())
	}
}
