package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/uptrace/bun"
)

type GameRepository interface {
	InsertBatch(ctx context.Context, games []*models.Game) (int, error)
	Count(ctx context.Context) (int, error)
	MaxID(ctx context.Context) (int64, error)
	// RandomPurchasable picks a random active game whose purchase count
	// is still below the border. Returns nil when none qualifies.
	RandomPurchasable(ctx context.Context, borderPurchases int) (*models.Game, error)
	IncrementPurchases(ctx context.Context, gameID int64, purchases int) error
}

type gameRepository struct {
	db *bun.DB
}

func NewGameRepository(db *bun.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) InsertBatch(ctx context.Context, games []*models.Game) (int, error) {
	success := 0
	for _, game := range games {
		game.CreatedAt = time.Now()
		if _, err := r.db.NewInsert().Model(game).Exec(ctx); err != nil {
			slog.Error("Failed to insert game",
				slog.String("type", "db"),
				slog.String("operation", "InsertBatch"),
				slog.String("title", game.Title),
				slog.Any("error", err))
			continue
		}
		success++
	}
	return success, nil
}

func (r *gameRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.Game)(nil)).Count(ctx)
}

func (r *gameRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.NewSelect().
		Model((*models.Game)(nil)).
		ColumnExpr("COALESCE(MAX(game_id), 0)").
		Scan(ctx, &max)
	return max, err
}

func (r *gameRepository) RandomPurchasable(ctx context.Context, borderPurchases int) (*models.Game, error) {
	game := new(models.Game)
	err := r.db.NewSelect().
		Model(game).
		Where("is_active = TRUE").
		Where("total_purchases < ?", borderPurchases).
		OrderExpr("RANDOM()").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return game, nil
}

func (r *gameRepository) IncrementPurchases(ctx context.Context, gameID int64, purchases int) error {
	_, err := r.db.NewUpdate().
		Model((*models.Game)(nil)).
		Set("total_purchases = total_purchases + ?", purchases).
		Where("game_id = ?", gameID).
		Exec(ctx)
	return err
}
