package service

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	// MaxLevel is the deepest look-ahead a computer player can be configured with.
	MaxLevel = 8

	// WinValue scores a move that wins on the spot. It exceeds any value reachable from NeutralValue.
	WinValue = 100000
	// NeutralValue bounds the random score [0, NeutralValue) given to leaves and draws.
	NeutralValue = 100
)

type BotService interface {
	ChooseMove(board *entity.Board, level int) (int, error)
	Evaluate(board *entity.Board, move, depth int) (int, error)
}

// randSource is satisfied by *rand.Rand.
type randSource interface {
	Intn(n int) int
}

type botService struct {
	logger *slog.Logger
	random randSource
}

func NewBotService(logger *slog.Logger, random randSource) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		random: random,
	}
}

// ChooseMove returns the valid move with the highest evaluation at the given depth.
// Ties keep the lowest cell index.
func (that *botService) ChooseMove(board *entity.Board, level int) (int, error) {
	if level < 0 || level > MaxLevel {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidLevel, level)
	}

	if board.IsEnded() {
		return 0, apperror.ErrGameFinished
	}

	bestMove := -1
	bestValue := math.MinInt

	for move := 0; move < entity.BoardSize; move++ {
		if !board.IsValidMove(move) {
			continue
		}

		value, err := that.Evaluate(board, move, level)
		if err != nil {
			return 0, fmt.Errorf("failed to evaluate move %d: %w", move, err)
		}

		if value > bestValue {
			bestMove = move
			bestValue = value
		}
	}

	if bestMove < 0 {
		return 0, apperror.ErrNoAvailableMove
	}

	that.logger.Debug("move chosen", "level", level, "cell", bestMove, "value", bestValue)

	return bestMove, nil
}

// Evaluate scores move for the player about to make it, looking depth plies ahead.
// A zero depth scores the move at random without looking at it.
func (that *botService) Evaluate(board *entity.Board, move, depth int) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: depth %d", apperror.ErrInvalidLevel, depth)
	}

	if depth == 0 {
		return that.random.Intn(NeutralValue), nil
	}

	next := board.Copy()
	if err := next.ApplyMove(move); err != nil {
		return 0, fmt.Errorf("failed to apply move: %w", err)
	}

	if next.IsEnded() {
		winner, err := next.Winner()
		if err != nil {
			return 0, fmt.Errorf("failed to get winner: %w", err)
		}

		if winner == entity.EmptyCell {
			return that.random.Intn(NeutralValue), nil
		}

		return WinValue, nil
	}

	// the opponent answers with its best reply, which is the worst one for us
	worstValue := math.MaxInt
	for counterMove := 0; counterMove < entity.BoardSize; counterMove++ {
		if !next.IsValidMove(counterMove) {
			continue
		}

		value, err := that.Evaluate(next, counterMove, depth-1)
		if err != nil {
			return 0, err
		}

		if -value < worstValue {
			worstValue = -value
		}
	}

	return worstValue, nil
}
