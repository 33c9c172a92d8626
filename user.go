package passageflex

import (
	"context"

	"github.com/sufield/passageflex/internal/api"
	"github.com/sufield/passageflex/internal/resolver"
	"github.com/sufield/passageflex/models"
)

// User holds the user and passkey device operations. Every method
// addresses users by the external ID your application assigned; the
// mapping to the identity service's user IDs is handled internally,
// and an external ID that matches no user fails with ErrUserNotFound.
type User struct {
	cfg      *api.Configuration
	resolver *resolver.Resolver
}

// Get fetches the full user record for an external ID.
func (u *User) Get(ctx context.Context, externalID string) (*models.User, error) {
	if externalID == "" {
		return nil, invalidArgument("external ID is required")
	}
	userID, err := u.resolver.Resolve(ctx, externalID)
	if err != nil {
		return nil, classify(err)
	}
	return u.GetByID(ctx, userID)
}

// GetByID fetches the full user record by the identity service's own
// user ID, skipping external ID resolution.
func (u *User) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, invalidArgument("user ID is required")
	}
	resp, err := api.GetUser(ctx, u.cfg, userID)
	if err != nil {
		return nil, classify(err)
	}
	return &resp.User, nil
}

// ListDevices lists the passkey devices registered to a user.
func (u *User) ListDevices(ctx context.Context, externalID string) ([]models.Device, error) {
	if externalID == "" {
		return nil, invalidArgument("external ID is required")
	}
	userID, err := u.resolver.Resolve(ctx, externalID)
	if err != nil {
		return nil, classify(err)
	}
	resp, err := api.ListUserDevices(ctx, u.cfg, userID)
	if err != nil {
		return nil, classify(err)
	}
	return resp.Devices, nil
}

// RevokeDevice removes a single passkey device from a user. If the
// external ID does not resolve, the device is left untouched and the
// resolution error is returned.
func (u *User) RevokeDevice(ctx context.Context, externalID, deviceID string) error {
	if externalID == "" {
		return invalidArgument("external ID is required")
	}
	if deviceID == "" {
		return invalidArgument("device ID is required")
	}
	userID, err := u.resolver.Resolve(ctx, externalID)
	if err != nil {
		return classify(err)
	}
	if err := api.DeleteUserDevice(ctx, u.cfg, userID, deviceID); err != nil {
		return classify(err)
	}
	return nil
}
