package ports

import (
	"context"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface a duplicate email as domain.ErrEmailTaken so concurrent
// registrations racing past the find-by-email check still end in a conflict.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
