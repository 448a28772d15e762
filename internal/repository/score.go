package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldDraws  = "draws"
)

type ScoreRepository interface {
	Increment(ctx context.Context, level int, result entity.Result) (entity.Score, error)
	GetByLevel(ctx context.Context, level int) (entity.Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func scoreKey(level int) string {
	return "score:" + strconv.Itoa(level)
}

func resultField(result entity.Result) (string, error) {
	switch result {
	case entity.ResultWin:
		return fieldWins, nil
	case entity.ResultLoss:
		return fieldLosses, nil
	case entity.ResultDraw:
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}
}

func (that *dbScore) Increment(ctx context.Context, level int, result entity.Result) (entity.Score, error) {
	field, err := resultField(result)
	if err != nil {
		return entity.Score{}, err
	}

	if err = that.client.HIncrBy(ctx, scoreKey(level), field, 1).Err(); err != nil {
		return entity.Score{}, fmt.Errorf("failed to increment score: %w", err)
	}

	return that.GetByLevel(ctx, level)
}

// GetByLevel returns an empty score for a level without records.
func (that *dbScore) GetByLevel(ctx context.Context, level int) (entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey(level)).Result()
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score by level: %w", err)
	}

	score := entity.Score{Level: level}
	for field, target := range map[string]*int{
		fieldWins:   &score.Wins,
		fieldLosses: &score.Losses,
		fieldDraws:  &score.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(raw); err != nil {
			return entity.Score{}, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return score, nil
}
