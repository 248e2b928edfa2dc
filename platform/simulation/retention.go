package simulation

import (
	"context"
	"time"

	"github.com/ByterGame/data-analytics-FEFU/platform/database/repositories"
)

// RetentionPruner removes users that have been inactive for the full
// retention window. The delete is coarse and non-transactional: it can
// run alongside growth and activity ticks because it only ever touches
// rows whose last_active is already a full window in the past.
type RetentionPruner struct {
	users         repositories.UserRepository
	retentionDays int
}

func NewRetentionPruner(users repositories.UserRepository, retentionDays int) *RetentionPruner {
	if retentionDays <= 0 {
		retentionDays = 730
	}
	return &RetentionPruner{users: users, retentionDays: retentionDays}
}

// Prune deletes users whose last activity is strictly older than
// now minus the retention window and returns how many were removed.
func (p *RetentionPruner) Prune(ctx context.Context, now time.Time) (int, error) {
	border := now.AddDate(0, 0, -p.retentionDays)
	return p.users.DeleteInactiveBefore(ctx, border)
}
