package apperrors

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("not found")
	ErrTaskRunning           = errors.New("a task is already running")
	ErrNoCurrentTask         = errors.New("no current task")
	ErrInvalidTransition     = errors.New("invalid state transition")
	ErrUnknownMessageType    = errors.New("Unknown message type")
	ErrCapabilityUnavailable = errors.New("capability unavailable")
)
