package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrLevelOutOfRange = errors.New("difficulty level out of range")

type ScoreService interface {
	Record(ctx context.Context, level int, result entity.Result) (entity.Score, error)
	GetScore(ctx context.Context, level int) (entity.Score, error)
}

type scoreRepo interface {
	Increment(ctx context.Context, level int, result entity.Result) (entity.Score, error)
	GetByLevel(ctx context.Context, level int) (entity.Score, error)
}

type scoreService struct {
	scoreRepo scoreRepo
}

func NewScoreService(scoreRepo scoreRepo) ScoreService {
	return &scoreService{
		scoreRepo: scoreRepo,
	}
}

func (that *scoreService) Record(ctx context.Context, level int, result entity.Result) (entity.Score, error) {
	if level < 0 || level > MaxLevel {
		return entity.Score{}, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}

	score, err := that.scoreRepo.Increment(ctx, level, result)
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to record result: %w", err)
	}

	return score, nil
}

func (that *scoreService) GetScore(ctx context.Context, level int) (entity.Score, error) {
	score, err := that.scoreRepo.GetByLevel(ctx, level)
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to retrieve score from storage: %w", err)
	}

	return score, nil
}
