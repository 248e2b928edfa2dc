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

type DeveloperRepository interface {
	InsertBatch(ctx context.Context, developers []*models.Developer) (int, error)
	Count(ctx context.Context) (int, error)
	MaxID(ctx context.Context) (int64, error)
	// RandomID picks a uniformly random developer. The bool reports
	// whether any developer exists at all.
	RandomID(ctx context.Context) (int64, bool, error)
	AddRevenue(ctx context.Context, developerID int64, revenue float64) error
}

type developerRepository struct {
	db *bun.DB
}

func NewDeveloperRepository(db *bun.DB) DeveloperRepository {
	return &developerRepository{db: db}
}

func (r *developerRepository) InsertBatch(ctx context.Context, developers []*models.Developer) (int, error) {
	success := 0
	for _, dev := range developers {
		dev.CreatedAt = time.Now()
		if _, err := r.db.NewInsert().Model(dev).Exec(ctx); err != nil {
			slog.Error("Failed to insert developer",
				slog.String("type", "db"),
				slog.String("operation", "InsertBatch"),
				slog.String("studio_name", dev.StudioName),
				slog.Any("error", err))
			continue
		}
		success++
	}
	return success, nil
}

func (r *developerRepository) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*models.Developer)(nil)).Count(ctx)
}

func (r *developerRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.NewSelect().
		Model((*models.Developer)(nil)).
		ColumnExpr("COALESCE(MAX(developer_id), 0)").
		Scan(ctx, &max)
	return max, err
}

func (r *developerRepository) RandomID(ctx context.Context) (int64, bool, error) {
	var id int64
	err := r.db.NewSelect().
		Model((*models.Developer)(nil)).
		Column("developer_id").
		OrderExpr("RANDOM()").
		Limit(1).
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func (r *developerRepository) AddRevenue(ctx context.Context, developerID int64, revenue float64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Developer)(nil)).
		Set("total_revenue = total_revenue + ?", revenue).
		Where("developer_id = ?", developerID).
		Exec(ctx)
	return err
}
