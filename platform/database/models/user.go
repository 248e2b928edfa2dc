package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID               int64     `bun:"user_id,pk"`
	Username         string    `bun:"username,notnull,unique"`
	Email            string    `bun:"email,notnull,unique"`
	CountryCode      string    `bun:"country_code,notnull"`
	Region           string    `bun:"region"`
	RegistrationDate time.Time `bun:"registration_date,notnull"`
	TotalSpent       float64   `bun:"total_spent,notnull,default:0"`
	LastActive       time.Time `bun:"last_active"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
