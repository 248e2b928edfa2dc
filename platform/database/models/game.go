package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	MonetizationFree = "free"
	MonetizationPaid = "paid"
)

type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID               int64     `bun:"game_id,pk"`
	Title            string    `bun:"title,notnull"`
	DeveloperID      int64     `bun:"developer_id,notnull"`
	ReleaseDate      time.Time `bun:"release_date,notnull"`
	BasePrice        float64   `bun:"base_price,notnull,default:0"`
	CurrentPrice     float64   `bun:"current_price,notnull,default:0"`
	MonetizationType string    `bun:"monetization_type,notnull"`
	GenreMain        string    `bun:"genre_main,notnull"`
	GenreTags        []string  `bun:"genre_tags,type:jsonb"`
	AgeRating        string    `bun:"age_rating,notnull"`
	TotalPurchases   int       `bun:"total_purchases,notnull,default:0"`
	IsActive         bool      `bun:"is_active,notnull,default:true"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
