package player

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MessageDraw = "It's a draw. The next match will be decisive!"
	MessageWin  = "You won! You are a true champion!"
	MessageLoss = "You lost, but don't give up.\nNext time will surely go better!"
)

// moveAsker must return a cell for which board.IsValidMove holds.
type moveAsker interface {
	AskMove(board *entity.Board) (int, error)
}

type resultShower interface {
	ShowResult(message string) error
}

type Human struct {
	mark   entity.Mark
	asker  moveAsker
	shower resultShower
}

func NewHuman(mark entity.Mark, asker moveAsker, shower resultShower) (*Human, error) {
	if !entity.IsPlayerMark(mark) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	return &Human{
		mark:   mark,
		asker:  asker,
		shower: shower,
	}, nil
}

func (that *Human) Mark() entity.Mark {
	return that.mark
}

func (that *Human) MakeMove(board *entity.Board) error {
	return makeMove(that, board)
}

func (that *Human) NotifyResult(winner entity.Mark) error {
	var message string

	switch entity.ResultFor(that.mark, winner) {
	case entity.ResultDraw:
		message = MessageDraw
	case entity.ResultWin:
		message = MessageWin
	default:
		message = MessageLoss
	}

	if err := that.shower.ShowResult(message); err != nil {
		return fmt.Errorf("failed to show result: %w", err)
	}

	return nil
}

func (that *Human) chooseMove(board *entity.Board) (int, error) {
	move, err := that.asker.AskMove(board)
	if err != nil {
		return 0, fmt.Errorf("failed to ask move: %w", err)
	}

	return move, nil
}
