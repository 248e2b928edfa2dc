package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	InsertBatch(ctx context.Context, users []*models.User) (int, error)
	Count(ctx context.Context) (int, error)
	AllIDs(ctx context.Context) ([]int64, error)
	MaxID(ctx context.Context) (int64, error)
	UpdateLastActive(ctx context.Context, userID int64, lastActive time.Time) error
	AddSpent(ctx context.Context, userID int64, amount float64, lastActive time.Time) error
	DeleteInactiveBefore(ctx context.Context, border time.Time) (int, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

// InsertBatch inserts users one by one and returns the number that made
// it in. A failed row is logged and skipped, never aborting the batch.
func (r *userRepository) InsertBatch(ctx context.Context, users []*models.User) (int, error) {
	success := 0
	for _, user := range users {
		user.CreatedAt = time.Now()
		if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
			slog.Error("Failed to insert user",
				slog.String("type", "db"),
				slog.String("operation", "InsertBatch"),
				slog.String("username", user.Username),
				slog.Any("error", err))
			continue
		}
		success++
	}
	return success, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.User)(nil)).Count(ctx)
}

func (r *userRepository) AllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("user_id").
		Order("user_id ASC").
		Scan(ctx, &ids)
	return ids, err
}

func (r *userRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		ColumnExpr("COALESCE(MAX(user_id), 0)").
		Scan(ctx, &max)
	return max, err
}

func (r *userRepository) UpdateLastActive(ctx context.Context, userID int64, lastActive time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("last_active = ?", lastActive).
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) AddSpent(ctx context.Context, userID int64, amount float64, lastActive time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("total_spent = total_spent + ?", amount).
		Set("last_active = ?", lastActive).
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}

func (r *userRepository) DeleteInactiveBefore(ctx context.Context, border time.Time) (int, error) {
	res, err := r.db.NewDelete().
		Model((*models.User)(nil)).
		Where("last_active < ?", border).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
