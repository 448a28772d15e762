package apperror

import (
	"errors"
	"fmt"
)

// ErrContractViolation marks a caller bug: an operation was invoked outside its precondition.
var ErrContractViolation = errors.New("contract violation")

var (
	ErrGameFinished    = fmt.Errorf("%w: game is already finished", ErrContractViolation)
	ErrGameIsNotEnded  = fmt.Errorf("%w: game is not finished", ErrContractViolation)
	ErrCellOccupied    = fmt.Errorf("%w: cell is already occupied", ErrContractViolation)
	ErrInvalidCell     = fmt.Errorf("%w: invalid cell index", ErrContractViolation)
	ErrInvalidMark     = fmt.Errorf("%w: invalid player mark", ErrContractViolation)
	ErrInvalidLevel    = fmt.Errorf("%w: invalid difficulty level", ErrContractViolation)
	ErrNoAvailableMove = fmt.Errorf("%w: no available moves", ErrContractViolation)
)
