package player

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

type moveSearcher interface {
	ChooseMove(board *entity.Board, level int) (int, error)
}

// Computer plays the moves picked by the search at a fixed difficulty level.
type Computer struct {
	mark     entity.Mark
	level    int
	searcher moveSearcher
}

func NewComputer(mark entity.Mark, level int, searcher moveSearcher) (*Computer, error) {
	if !entity.IsPlayerMark(mark) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if level < 0 || level > service.MaxLevel {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidLevel, level)
	}

	return &Computer{
		mark:     mark,
		level:    level,
		searcher: searcher,
	}, nil
}

func (that *Computer) Mark() entity.Mark {
	return that.mark
}

func (that *Computer) Level() int {
	return that.level
}

func (that *Computer) MakeMove(board *entity.Board) error {
	return makeMove(that, board)
}

func (that *Computer) NotifyResult(entity.Mark) error {
	return nil
}

func (that *Computer) chooseMove(board *entity.Board) (int, error) {
	move, err := that.searcher.ChooseMove(board, that.level)
	if err != nil {
		return 0, fmt.Errorf("failed to search move: %w", err)
	}

	return move, nil
}
