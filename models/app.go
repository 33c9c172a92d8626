package models

import "time"

// AppInfo describes a Passage app's configuration as reported by the
// management API. Fields the SDK does not interpret are carried through
// unchanged so callers can inspect them.
type AppInfo struct {
	AdditionalAuthOrigins []string `json:"additional_auth_origins"`
	// AllowedCallbackURLs are the valid URLs users can be redirected to
	// after authentication.
	AllowedCallbackURLs []string `json:"allowed_callback_urls"`
	AllowedIdentifier   string   `json:"allowed_identifier"`
	// AllowedLogoutURLs are the valid URLs users can be redirected to
	// after logging out.
	AllowedLogoutURLs   []string  `json:"allowed_logout_urls"`
	ApplicationLoginURI string    `json:"application_login_uri"`
	AuthOrigin          string    `json:"auth_origin"`
	CreatedAt           time.Time `json:"created_at"`
	DefaultLanguage     string    `json:"default_language"`
	ID                  string    `json:"id"`
	LoginURL            string    `json:"login_url"`
	Name                string    `json:"name"`
	// Hosted reports whether the app's login page is hosted by Passage.
	Hosted                        bool   `json:"hosted"`
	HostedSubdomain               string `json:"hosted_subdomain"`
	PassageBranding               bool   `json:"passage_branding"`
	ProfileManagement             bool   `json:"profile_management"`
	PublicSignup                  bool   `json:"public_signup"`
	RedirectURL                   string `json:"redirect_url"`
	RequireEmailVerification      bool   `json:"require_email_verification"`
	RequireIdentifierVerification bool   `json:"require_identifier_verification"`
	RequiredIdentifier            string `json:"required_identifier"`
	Role                          string `json:"role"`
	RSAPublicKey                  string `json:"rsa_public_key"`
	SessionTimeoutLength          int    `json:"session_timeout_length"`
	// Type is "flex" for apps driven by this SDK.
	Type string `json:"type"`
}
