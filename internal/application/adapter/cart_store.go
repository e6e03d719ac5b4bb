package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/domain/entity"
)

// CartStore holds the transient per-session cart state. A missing cart reads
// back as an empty one; concurrent writes to the same session are
// last-write-wins.
type CartStore interface {
	// Get retrieves the cart for a session, or an empty cart if none exists.
	Get(ctx context.Context, sessionID uuid.UUID) (*entity.Cart, error)

	// Save stores the cart for a session.
	Save(ctx context.Context, sessionID uuid.UUID, cart *entity.Cart) error

	// Clear removes the cart for a session.
	Clear(ctx context.Context, sessionID uuid.UUID) error
}
