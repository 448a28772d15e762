package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrUnknownResult = errors.New("unknown match result")

// memoryScore keeps the tallies for the lifetime of the process.
type memoryScore struct {
	mu     sync.Mutex
	scores map[int]entity.Score
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[int]entity.Score),
	}
}

func (that *memoryScore) Increment(_ context.Context, level int, result entity.Result) (entity.Score, error) {
	if _, err := resultField(result); err != nil {
		return entity.Score{}, fmt.Errorf("failed to increment score: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[level]
	score.Level = level
	score.Add(result)
	that.scores[level] = score

	return score, nil
}

func (that *memoryScore) GetByLevel(_ context.Context, level int) (entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[level]
	score.Level = level

	return score, nil
}
