package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const scoreboardKey = "scoreboard"

// ScoreRepository counts finished games per winning marker. Draws are counted
// under entity.PlayerTie.
type ScoreRepository interface {
	Increment(ctx context.Context, marker string) error
	GetAll(ctx context.Context) (map[string]int64, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Increment(ctx context.Context, marker string) error {
	if err := that.client.HIncrBy(ctx, scoreboardKey, marker, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScore) GetAll(ctx context.Context) (map[string]int64, error) {
	response, err := that.client.HGetAll(ctx, scoreboardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	scores := make(map[string]int64, len(response))
	for marker, value := range response {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score of %q: %w", marker, err)
		}
		scores[marker] = count
	}

	return scores, nil
}
