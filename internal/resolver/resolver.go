// Package resolver maps caller-owned external IDs to the identity
// service's internal user IDs. Every user-scoped operation goes
// through this translation, so the mapping rules are concentrated
// here: exactly one match yields an ID, zero matches is a not-found,
// and more than one match is a data integrity fault on the service
// side that must never be silently collapsed to "the first one".
package resolver

import (
	"context"
	"errors"

	"github.com/sufield/passageflex/internal/api"
)

var (
	// ErrNotFound reports that no user carries the external ID.
	ErrNotFound = errors.New("resolver: user not found")

	// ErrAmbiguous reports that more than one user carries the
	// external ID. External IDs are supposed to be unique per app,
	// so this indicates corrupted state at the identity service.
	ErrAmbiguous = errors.New("resolver: multiple users found for external ID")
)

// Resolver resolves external IDs against the identity service.
type Resolver struct {
	cfg *api.Configuration
}

// New returns a Resolver backed by the given transport configuration.
func New(cfg *api.Configuration) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the internal user ID for externalID.
//
// A single-item page is enough to detect duplicates: the server
// reports the total match count alongside the page, so limit=1 keeps
// the payload minimal without losing the ambiguity signal.
func (r *Resolver) Resolve(ctx context.Context, externalID string) (string, error) {
	resp, err := api.ListPaginatedUsers(ctx, r.cfg, api.ListUsersParams{
		Page:       1,
		Limit:      1,
		Identifier: externalID,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Users) == 0 {
		return "", ErrNotFound
	}
	if len(resp.Users) > 1 || resp.TotalUsers > 1 {
		return "", ErrAmbiguous
	}
	return resp.Users[0].ID, nil
}
