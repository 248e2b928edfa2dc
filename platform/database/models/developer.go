package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Developer struct {
	bun.BaseModel `bun:"table:developers,alias:d"`

	ID             int64   `bun:"developer_id,pk"`
	StudioName     string  `bun:"studio_name,notnull,unique"`
	CountryCode    string  `bun:"country_code,notnull"`
	FoundationYear int     `bun:"foundation_year"`
	TotalRevenue   float64 `bun:"total_revenue,notnull,default:0"`
	ContactEmail   string  `bun:"contact_email,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
