package ports

import (
	"context"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

// AuditionRepository defines persistence operations for audition postings.
type AuditionRepository interface {
	Create(ctx context.Context, a *domain.Audition) (*domain.Audition, error)
	FindByID(ctx context.Context, id string) (*domain.Audition, error)
	FindAll(ctx context.Context) ([]*domain.Audition, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Audition, error)
	Update(ctx context.Context, a *domain.Audition) error
	Delete(ctx context.Context, id string) error
}
