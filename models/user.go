package models

import "time"

// UserStatus is the lifecycle state of a user record.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

// WebAuthnType is a credential type that has been used for
// authentication.
type WebAuthnType string

const (
	WebAuthnTypePasskey     WebAuthnType = "passkey"
	WebAuthnTypePlatform    WebAuthnType = "platform"
	WebAuthnTypeSecurityKey WebAuthnType = "security_key"
)

// User is the canonical user record held by the identity service. The
// ID field is the service's own identifier; ExternalID is the
// caller-chosen identifier supplied at registration.
type User struct {
	CreatedAt   time.Time  `json:"created_at"`
	ExternalID  string     `json:"external_id"`
	ID          string     `json:"id"`
	LastLoginAt time.Time  `json:"last_login_at"`
	LoginCount  int        `json:"login_count"`
	Status      UserStatus `json:"status"`
	UpdatedAt   time.Time  `json:"updated_at"`
	// UserMetadata is schema-defined per app and passed through opaquely.
	UserMetadata    map[string]any `json:"user_metadata"`
	WebAuthn        bool           `json:"webauthn"`
	WebAuthnDevices []Device       `json:"webauthn_devices"`
	WebAuthnTypes   []WebAuthnType `json:"webauthn_types"`
}

// ListUsersItem is the trimmed user record returned by the paginated
// user search endpoint.
type ListUsersItem struct {
	CreatedAt     time.Time      `json:"created_at"`
	Email         string         `json:"email"`
	EmailVerified bool           `json:"email_verified"`
	ExternalID    string         `json:"external_id"`
	ID            string         `json:"id"`
	LastLoginAt   time.Time      `json:"last_login_at"`
	LoginCount    int            `json:"login_count"`
	Phone         string         `json:"phone"`
	PhoneVerified bool           `json:"phone_verified"`
	Status        UserStatus     `json:"status"`
	UpdatedAt     time.Time      `json:"updated_at"`
	UserMetadata  map[string]any `json:"user_metadata"`
}
