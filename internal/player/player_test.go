package player

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var errInputClosed = errors.New("input closed")

type mockMoveAsker struct {
	mock.Mock
}

func (that *mockMoveAsker) AskMove(board *entity.Board) (int, error) {
	args := that.Called(board)
	return args.Int(0), args.Error(1)
}

type mockResultShower struct {
	mock.Mock
}

func (that *mockResultShower) ShowResult(message string) error {
	args := that.Called(message)
	return args.Error(0)
}

type mockSearcher struct {
	mock.Mock
}

func (that *mockSearcher) ChooseMove(board *entity.Board, level int) (int, error) {
	args := that.Called(board, level)
	return args.Int(0), args.Error(1)
}

func TestHuman_MakeMove(t *testing.T) {
	t.Run("Applies the asked move", func(t *testing.T) {
		// Given: a human X whose input returns cell 4
		asker := &mockMoveAsker{}
		board := entity.NewBoard()
		asker.On("AskMove", board).Return(4, nil).Once()

		human, err := NewHuman(entity.PlayerX, asker, &mockResultShower{})
		require.NoError(t, err)

		// When: the human makes a move
		err = human.MakeMove(board)

		// Then: cell 4 holds X
		require.NoError(t, err)
		content, err := board.CellContent(4)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, content)
		asker.AssertExpectations(t)
	})

	t.Run("Returns input errors", func(t *testing.T) {
		// Given: an input that fails
		asker := &mockMoveAsker{}
		asker.On("AskMove", mock.Anything).Return(0, errInputClosed).Once()

		human, err := NewHuman(entity.PlayerX, asker, &mockResultShower{})
		require.NoError(t, err)
		board := entity.NewBoard()

		// When: the human makes a move
		err = human.MakeMove(board)

		// Then: the error is propagated and the board is unchanged
		require.ErrorIs(t, err, errInputClosed)
		assert.Equal(t, *entity.NewBoard(), *board)
	})

	t.Run("Rejects an occupied cell from the input", func(t *testing.T) {
		// Given: a board where cell 0 is taken and an input insisting on it
		asker := &mockMoveAsker{}
		asker.On("AskMove", mock.Anything).Return(0, nil).Once()

		human, err := NewHuman(entity.PlayerO, asker, &mockResultShower{})
		require.NoError(t, err)

		board := entity.NewBoard()
		require.NoError(t, board.ApplyMove(0))

		// When: the human makes a move
		err = human.MakeMove(board)

		// Then: a contract violation is reported
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestHuman_NotifyResult(t *testing.T) {
	tests := []struct {
		name    string
		winner  entity.Mark
		message string
	}{
		{name: "Draw", winner: entity.EmptyCell, message: MessageDraw},
		{name: "Own mark wins", winner: entity.PlayerO, message: MessageWin},
		{name: "Opponent wins", winner: entity.PlayerX, message: MessageLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a human playing O
			shower := &mockResultShower{}
			shower.On("ShowResult", tt.message).Return(nil).Once()

			human, err := NewHuman(entity.PlayerO, &mockMoveAsker{}, shower)
			require.NoError(t, err)

			// When: the result is notified
			err = human.NotifyResult(tt.winner)

			// Then: the matching message is shown
			require.NoError(t, err)
			shower.AssertExpectations(t)
		})
	}
}

func TestComputer_MakeMove(t *testing.T) {
	t.Run("Delegates to the searcher with its level", func(t *testing.T) {
		// Given: a computer O at level 5 and a searcher returning cell 8
		searcher := &mockSearcher{}
		board := entity.NewBoard()
		require.NoError(t, board.ApplyMove(4))
		searcher.On("ChooseMove", board, 5).Return(8, nil).Once()

		computer, err := NewComputer(entity.PlayerO, 5, searcher)
		require.NoError(t, err)

		// When: the computer moves
		err = computer.MakeMove(board)

		// Then: cell 8 holds O
		require.NoError(t, err)
		content, err := board.CellContent(8)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, content)
		searcher.AssertExpectations(t)
	})

	t.Run("Wins with the real search", func(t *testing.T) {
		// Given: X holds 0 and 1, O holds 3 and 4, X to move
		bot := service.NewBotService(slog.New(slog.NewTextHandler(io.Discard, nil)), rand.New(rand.NewSource(1)))
		computer, err := NewComputer(entity.PlayerX, 1, bot)
		require.NoError(t, err)

		board := entity.NewBoard()
		for _, move := range []int{0, 3, 1, 4} {
			require.NoError(t, board.ApplyMove(move))
		}

		// When: the computer moves
		err = computer.MakeMove(board)

		// Then: X wins
		require.NoError(t, err)
		winner, err := board.Winner()
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, winner)
	})

	t.Run("NotifyResult does nothing", func(t *testing.T) {
		computer, err := NewComputer(entity.PlayerX, 0, &mockSearcher{})
		require.NoError(t, err)

		assert.NoError(t, computer.NotifyResult(entity.PlayerO))
	})
}

func TestNewPlayer_Errors(t *testing.T) {
	t.Run("Human with empty mark", func(t *testing.T) {
		_, err := NewHuman(entity.EmptyCell, &mockMoveAsker{}, &mockResultShower{})
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Computer with invalid mark", func(t *testing.T) {
		_, err := NewComputer("Z", 1, &mockSearcher{})
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Computer with level out of range", func(t *testing.T) {
		_, err := NewComputer(entity.PlayerX, service.MaxLevel+1, &mockSearcher{})
		require.ErrorIs(t, err, apperror.ErrInvalidLevel)

		_, err = NewComputer(entity.PlayerX, -1, &mockSearcher{})
		require.ErrorIs(t, err, apperror.ErrContractViolation)
	})
}

func TestPlayer_Variants(t *testing.T) {
	human, err := NewHuman(entity.PlayerX, &mockMoveAsker{}, &mockResultShower{})
	require.NoError(t, err)
	computer, err := NewComputer(entity.PlayerO, 0, &mockSearcher{})
	require.NoError(t, err)

	players := []Player{human, computer}

	assert.Equal(t, entity.PlayerX, players[0].Mark())
	assert.Equal(t, entity.PlayerO, players[1].Mark())
}
