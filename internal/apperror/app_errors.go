package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrIllegalMove     = errors.New("illegal move")
	ErrWrongPhase      = errors.New("operation not allowed in the current phase")
	ErrSessionNotFound = errors.New("game session not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
