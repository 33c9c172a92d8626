package models

import "time"

// DeviceType classifies the authenticator backing a passkey.
type DeviceType string

const (
	DeviceTypePasskey     DeviceType = "passkey"
	DeviceTypePlatform    DeviceType = "platform"
	DeviceTypeSecurityKey DeviceType = "security_key"
)

// Device is one registered WebAuthn authenticator bound to a user.
type Device struct {
	CreatedAt time.Time `json:"created_at"`
	// CredID is the WebAuthn credential ID registered by the
	// authenticator.
	CredID       string      `json:"cred_id"`
	FriendlyName string      `json:"friendly_name"`
	ID           string      `json:"id"`
	Icons        DeviceIcons `json:"icons"`
	LastLoginAt  time.Time   `json:"last_login_at"`
	Type         DeviceType  `json:"type"`
	UpdatedAt    time.Time   `json:"updated_at"`
	UsageCount   int         `json:"usage_count"`
}

// DeviceIcons holds the authenticator vendor's icon URLs, when known.
type DeviceIcons struct {
	Light *string `json:"light"`
	Dark  *string `json:"dark"`
}
