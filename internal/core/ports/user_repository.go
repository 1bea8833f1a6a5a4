package ports

import (
	"context"

	"delify/internal/core/domain/model/account"
	"delify/internal/core/domain/model/kernel"
)

// UserRepository defines the read/update contract against the external
// identity store. Account creation and provider sync happen elsewhere;
// the core only resolves users and saves their default delivery address.
type UserRepository interface {
	// Add persists a new user record. Present for store seeding and tests.
	Add(ctx context.Context, user *account.User) error

	// Update persists changes to an existing user record.
	Update(ctx context.Context, user *account.User) error

	// Get retrieves a user by internal id.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByExternalUID resolves a user by the auth-provider identity.
	// Returns an errs.ObjectNotFoundError when no such user exists.
	GetByExternalUID(ctx context.Context, externalUID string) (*account.User, error)
}
