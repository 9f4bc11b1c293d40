package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetLast(ctx context.Context) (*entity.Game, error) {
	args := that.Called(ctx)

	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

type mockScoreRepo struct {
	mock.Mock
}

func (that *mockScoreRepo) Increment(ctx context.Context, marker string) error {
	args := that.Called(ctx, marker)
	return args.Error(0)
}

func (that *mockScoreRepo) GetAll(ctx context.Context) (map[string]int64, error) {
	args := that.Called(ctx)

	scores, _ := args.Get(0).(map[string]int64)
	return scores, args.Error(1)
}
