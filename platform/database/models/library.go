package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LibraryEntry links a purchased game to the owning user.
type LibraryEntry struct {
	bun.BaseModel `bun:"table:user_library,alias:ul"`

	ID           int64     `bun:"user_game_id,pk,autoincrement"`
	UserID       int64     `bun:"user_id,notnull"`
	GameID       int64     `bun:"game_id,notnull"`
	PurchaseDate time.Time `bun:"purchase_date,notnull"`
}
