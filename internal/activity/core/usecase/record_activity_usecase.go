package usecase

import (
	"context"
	"log"
	"time"

	"gym-dashboard-service/internal/activity/core/domain"
	"gym-dashboard-service/internal/activity/core/ports"
)

// RecordActivityUseCase appends audit entries. A failed append must
// never fail the operation that triggered it, so Record returns nothing
// and reports storage errors to the operational log only.
type RecordActivityUseCase struct {
	repo ports.ActivityRepositoryPort
	now  func() time.Time
}

func NewRecordActivityUseCase(repo ports.ActivityRepositoryPort) *RecordActivityUseCase {
	return &RecordActivityUseCase{repo: repo, now: time.Now}
}

func (uc *RecordActivityUseCase) Record(ctx context.Context, username, activity string) {
	entry := &domain.LogEntry{
		Username: username,
		Activity: activity,
		Date:     uc.now().UTC(),
	}

	if err := uc.repo.Insert(ctx, entry); err != nil {
		log.Printf("activity log append failed for %q: %v", username, err)
	}
}
