package contract

import (
	"context"

	"wiccapedia-api/internal/repository/specification"
)

// Repository is the create-and-fetch contract shared by every entity kind.
// E is the domain entity, K its primary key type.
type Repository[E any, K comparable] interface {
	// Create inserts e and writes the store-assigned id back onto it.
	// Integrity violations surface as apperror.ErrConstraintViolation.
	Create(ctx context.Context, e *E) error
	// FindByID returns apperror.ErrNotFound when no row has the given key.
	FindByID(ctx context.Context, id K) (*E, error)
	// FindOne returns (nil, nil) when nothing matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
