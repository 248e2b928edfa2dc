package repositories

import (
	"context"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/uptrace/bun"
)

type LibraryRepository interface {
	Add(ctx context.Context, entry *models.LibraryEntry) error
	UserOwnsGame(ctx context.Context, userID, gameID int64) (bool, error)
}

type libraryRepository struct {
	db *bun.DB
}

func NewLibraryRepository(db *bun.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Add(ctx context.Context, entry *models.LibraryEntry) error {
	_, err := r.db.NewInsert().
		Model(entry).
		On("CONFLICT (user_id, game_id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *libraryRepository) UserOwnsGame(ctx context.Context, userID, gameID int64) (bool, error) {
	return r.db.NewSelect().
		Model((*models.LibraryEntry)(nil)).
		Where("user_id = ?", userID).
		Where("game_id = ?", gameID).
		Exists(ctx)
}
