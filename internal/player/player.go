package player

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Player is either a Human or a Computer. The unexported method keeps the set closed.
type Player interface {
	Mark() entity.Mark

	// MakeMove chooses a cell and applies it to board.
	MakeMove(board *entity.Board) error

	// NotifyResult informs the player of the winner, entity.EmptyCell meaning a draw.
	NotifyResult(winner entity.Mark) error

	chooseMove(board *entity.Board) (int, error)
}

func makeMove(player Player, board *entity.Board) error {
	move, err := player.chooseMove(board)
	if err != nil {
		return fmt.Errorf("failed to choose move: %w", err)
	}

	if err = board.ApplyMove(move); err != nil {
		return fmt.Errorf("failed to apply move %d: %w", move, err)
	}

	return nil
}
