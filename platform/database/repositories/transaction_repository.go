package repositories

import (
	"context"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/models"
	"github.com/uptrace/bun"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	TotalPlatformRevenue(ctx context.Context) (float64, error)
}

type transactionRepository struct {
	db *bun.DB
}

func NewTransactionRepository(db *bun.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	_, err := r.db.NewInsert().Model(transaction).Exec(ctx)
	return err
}

func (r *transactionRepository) TotalPlatformRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.NewSelect().
		Model((*models.Transaction)(nil)).
		ColumnExpr("COALESCE(SUM(platform_commission), 0)").
		Scan(ctx, &total)
	return total, err
}
