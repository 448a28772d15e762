package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is the content of a cell and the symbol of a player.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// BoardSize is the number of cells, indexed 0..8 in row-major order.
const BoardSize = 9

// WinCombos lists the rows, columns and diagonals in scan order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

// Board holds the game state. The zero value is not usable, create boards with NewBoard.
//
// The number of X marks equals the number of O marks or exceeds it by one,
// and X moves next iff the counts are equal.
type Board struct {
	cells  [BoardSize]Mark
	next   Mark
	ended  bool
	winner Mark
}

func NewBoard() *Board {
	return &Board{
		next:   PlayerX,
		winner: EmptyCell,
	}
}

// Copy returns an independent board with the same state.
func (that *Board) Copy() *Board {
	clone := *that
	return &clone
}

// OpponentMark returns the mark of the other player.
func OpponentMark(mark Mark) (Mark, error) {
	switch mark {
	case PlayerX:
		return PlayerO, nil
	case PlayerO:
		return PlayerX, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}
}

// IsPlayerMark reports whether mark is X or O.
func IsPlayerMark(mark Mark) bool {
	return mark == PlayerX || mark == PlayerO
}

func (that *Board) IsValidMove(cell int) bool {
	return cell >= 0 && cell < BoardSize && that.cells[cell] == EmptyCell
}

func (that *Board) CellContent(cell int) (Mark, error) {
	if cell < 0 || cell >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that.cells[cell], nil
}

func (that *Board) Cells() [BoardSize]Mark {
	return that.cells
}

func (that *Board) IsEnded() bool {
	return that.ended
}

// NextMark returns the mark of the player to move. It fails once the game is over.
func (that *Board) NextMark() (Mark, error) {
	if that.ended {
		return EmptyCell, apperror.ErrGameFinished
	}

	return that.next, nil
}

// Winner returns the winning mark, or EmptyCell for a draw. It fails while the game is running.
func (that *Board) Winner() (Mark, error) {
	if !that.ended {
		return EmptyCell, apperror.ErrGameIsNotEnded
	}

	return that.winner, nil
}

// ApplyMove puts the mark of the next player on cell and updates the game state.
// The board is left untouched when the move is rejected.
func (that *Board) ApplyMove(cell int) error {
	if that.ended {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.cells[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	opponent, err := OpponentMark(that.next)
	if err != nil {
		return fmt.Errorf("failed to switch turn: %w", err)
	}

	that.cells[cell] = that.next
	that.next = opponent
	that.updateGameState()

	return nil
}

func (that *Board) updateGameState() {
	if winner := that.determineWinner(); winner != EmptyCell {
		that.winner = winner
		that.ended = true
		return
	}

	// the game will continue until all the squares are full
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return
		}
	}

	that.winner = EmptyCell
	that.ended = true
}

// determineWinner returns the owner of the first complete line, or EmptyCell.
func (that *Board) determineWinner() Mark {
	for _, combo := range WinCombos {
		var countX, countO int
		for _, cell := range combo {
			switch that.cells[cell] {
			case PlayerX:
				countX++
			case PlayerO:
				countO++
			}
		}

		switch {
		case countX == len(combo):
			return PlayerX
		case countO == len(combo):
			return PlayerO
		}
	}

	return EmptyCell
}
