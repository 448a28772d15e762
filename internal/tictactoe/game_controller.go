package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/player"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var ErrPlayerNotFound = errors.New("no player holds the mark to move")

type userInterface interface {
	AskMark() (entity.Mark, error)
	AskDifficultyLevel(maxLevel int) (int, error)
	AskMove(board *entity.Board) (int, error)
	AskPlayAgain() (bool, error)

	ShowBoard(board *entity.Board) error
	ShowResult(message string) error
	ShowScore(score entity.Score) error
}

type moveSearcher interface {
	ChooseMove(board *entity.Board, level int) (int, error)
}

type scoreService interface {
	Record(ctx context.Context, level int, result entity.Result) (entity.Score, error)
}

// GameController runs matches between the human at the console and the computer.
type GameController struct {
	logger *slog.Logger

	ui       userInterface
	searcher moveSearcher
	scores   scoreService
}

func NewGameController(logger *slog.Logger, ui userInterface, searcher moveSearcher, scores scoreService) *GameController {
	return &GameController{
		logger:   logger.With("component", "game"),
		ui:       ui,
		searcher: searcher,
		scores:   scores,
	}
}

// Run plays matches until the human declines another one.
func (that *GameController) Run(ctx context.Context) error {
	for {
		if err := that.PlayMatch(ctx); err != nil {
			return fmt.Errorf("failed to play match: %w", err)
		}

		again, err := that.ui.AskPlayAgain()
		if err != nil {
			return fmt.Errorf("failed to ask to play again: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// PlayMatch asks the human for a mark and a level, plays one game and records the result.
func (that *GameController) PlayMatch(ctx context.Context) error {
	log := that.logger.With("method", "PlayMatch", "matchID", pkg.GenerateMatchID())

	humanMark, err := that.ui.AskMark()
	if err != nil {
		return fmt.Errorf("failed to ask mark: %w", err)
	}

	human, err := player.NewHuman(humanMark, that.ui, that.ui)
	if err != nil {
		return fmt.Errorf("failed to create human player: %w", err)
	}

	computerMark, err := entity.OpponentMark(humanMark)
	if err != nil {
		return fmt.Errorf("failed to get computer mark: %w", err)
	}

	level, err := that.ui.AskDifficultyLevel(service.MaxLevel)
	if err != nil {
		return fmt.Errorf("failed to ask difficulty level: %w", err)
	}

	computer, err := player.NewComputer(computerMark, level, that.searcher)
	if err != nil {
		return fmt.Errorf("failed to create computer player: %w", err)
	}

	log.Info("match started", "human", humanMark, "level", level)

	winner, err := that.Play(ctx, entity.NewBoard(), human, computer)
	if err != nil {
		return err
	}

	result := entity.ResultFor(humanMark, winner)
	log.Info("match finished", "winner", winner, "result", result)

	score, err := that.scores.Record(ctx, level, result)
	if err != nil {
		log.Error("failed to record score", "error", err)
		return nil
	}

	if err = that.ui.ShowScore(score); err != nil {
		return fmt.Errorf("failed to show score: %w", err)
	}

	return nil
}

// Play lets the players move in turn on board until the game is over, then notifies every player.
func (that *GameController) Play(ctx context.Context, board *entity.Board, players ...player.Player) (entity.Mark, error) {
	for !board.IsEnded() {
		if err := ctx.Err(); err != nil {
			return entity.EmptyCell, fmt.Errorf("match interrupted: %w", err)
		}

		if err := that.ui.ShowBoard(board); err != nil {
			return entity.EmptyCell, fmt.Errorf("failed to show board: %w", err)
		}

		next, err := findNextPlayer(board, players)
		if err != nil {
			return entity.EmptyCell, err
		}

		if err = next.MakeMove(board); err != nil {
			return entity.EmptyCell, fmt.Errorf("player %s failed to move: %w", next.Mark(), err)
		}
	}

	if err := that.ui.ShowBoard(board); err != nil {
		return entity.EmptyCell, fmt.Errorf("failed to show board: %w", err)
	}

	winner, err := board.Winner()
	if err != nil {
		return entity.EmptyCell, fmt.Errorf("failed to get winner: %w", err)
	}

	for _, p := range players {
		if err = p.NotifyResult(winner); err != nil {
			return winner, fmt.Errorf("failed to notify player %s: %w", p.Mark(), err)
		}
	}

	return winner, nil
}

// findNextPlayer returns the player whose mark moves next.
func findNextPlayer(board *entity.Board, players []player.Player) (player.Player, error) {
	mark, err := board.NextMark()
	if err != nil {
		return nil, fmt.Errorf("failed to get next mark: %w", err)
	}

	for _, p := range players {
		if p.Mark() == mark {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, mark)
}
