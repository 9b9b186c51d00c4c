package session

import "fmt"

// Command is a navigation command already decoded from a key press.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	MoveUp
	MoveDown
	PageUp
	PageDown
	Home
	End
	ToggleEndian
	SetLittle
	SetBig
	Quit
)

// Commands lists every command.
var Commands = []Command{
	MoveLeft, MoveRight, MoveUp, MoveDown,
	PageUp, PageDown, Home, End,
	ToggleEndian, SetLittle, SetBig, Quit,
}

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case PageUp:
		return "page-up"
	case PageDown:
		return "page-down"
	case Home:
		return "home"
	case End:
		return "end"
	case ToggleEndian:
		return "toggle-endian"
	case SetLittle:
		return "set-little"
	case SetBig:
		return "set-big"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
