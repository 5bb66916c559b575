package ports

import (
	"context"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// UserRepository defines the persistence operations for accounts.
type UserRepository interface {
	// Create stores a new user. Returns domain.ErrEmailTaken when the
	// (lowercased) email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
