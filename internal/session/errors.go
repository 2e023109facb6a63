package session

import "errors"

var (
	// ErrQuit is returned by Exec for the quit command.
	ErrQuit = errors.New("session: quit")
	// ErrSyntax covers lines that do not form a command.
	ErrSyntax = errors.New("session: syntax error")
	// ErrUnknownCommand is returned for a command word nobody handles.
	ErrUnknownCommand = errors.New("session: unknown command")
	// ErrEmptySlot is returned when a command reads a slot with no automaton.
	ErrEmptySlot = errors.New("session: empty slot")
)
