package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Transaction struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`

	ID                 int64     `bun:"transaction_id,pk,autoincrement"`
	UserID             int64     `bun:"user_id,notnull"`
	GameID             int64     `bun:"game_id,notnull"`
	TransactionDate    time.Time `bun:"transaction_date,notnull"`
	Amount             float64   `bun:"amount,notnull"`
	DeveloperRevenue   float64   `bun:"developer_revenue,notnull"`
	PlatformCommission float64   `bun:"platform_commission,notnull"`
}
