package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for names it does not know.
var ErrUnknownCommand = errors.New("engine: unknown command")

// Command is a discrete player intent applied with Engine.Apply.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotateCW
	CmdRotateCCW
	CmdHold
)

var commandNames = map[Command]string{
	CmdNone:      "none",
	CmdMoveLeft:  "move_left",
	CmdMoveRight: "move_right",
	CmdSoftDrop:  "soft_drop",
	CmdHardDrop:  "hard_drop",
	CmdRotateCW:  "rotate_cw",
	CmdRotateCCW: "rotate_ccw",
	CmdHold:      "hold",
}

// String returns the snake_case name used by ParseCommand.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether c is a known command other than CmdNone.
func (c Command) Valid() bool {
	return c > CmdNone && c <= CmdHold
}

// ParseCommand maps a command name (case-insensitive, '-' or '_') to a
// Command. Adapters use it to reject bad input before it reaches the engine.
func ParseCommand(name string) (Command, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for c, n := range commandNames {
		if c != CmdNone && n == key {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("%w %q", ErrUnknownCommand, name)
}
