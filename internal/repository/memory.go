package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// In-memory repositories are used when redis is disabled. Their content is
// lost when the process exits.

type memoryGame struct {
	mu     sync.RWMutex
	games  map[string][]byte
	lastID string
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string][]byte),
	}
}

// CreateOrUpdate - stores a snapshot, later changes to game are not seen by the repository.
func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = gameJSON
	that.lastID = game.ID

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	gameJSON, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(gameJSON, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) GetLast(ctx context.Context) (*entity.Game, error) {
	that.mu.RLock()
	lastID := that.lastID
	that.mu.RUnlock()

	if lastID == "" {
		return nil, ErrGameNotFound
	}

	return that.GetByID(ctx, lastID)
}

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]int64
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]int64),
	}
}

func (that *memoryScore) Increment(_ context.Context, marker string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores[marker]++

	return nil
}

func (that *memoryScore) GetAll(_ context.Context) (map[string]int64, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return maps.Clone(that.scores), nil
}
