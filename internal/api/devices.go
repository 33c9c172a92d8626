package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sufield/passageflex/models"
)

// ListDevicesResponse holds a user's registered passkey devices.
type ListDevicesResponse struct {
	Devices []models.Device `json:"devices"`
}

// ListUserDevices lists the passkey devices registered to a user.
func ListUserDevices(ctx context.Context, cfg *Configuration, userID string) (*ListDevicesResponse, error) {
	var out ListDevicesResponse
	if err := do(ctx, cfg, http.MethodGet, "/users/"+url.PathEscape(userID)+"/devices", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUserDevice revokes a single passkey device. The server returns
// no body on success.
func DeleteUserDevice(ctx context.Context, cfg *Configuration, userID, deviceID string) error {
	path := "/users/" + url.PathEscape(userID) + "/devices/" + url.PathEscape(deviceID)
	return do(ctx, cfg, http.MethodDelete, path, nil, nil, nil)
}
