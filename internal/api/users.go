package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sufield/passageflex/models"
)

// ListUsersParams narrows the paginated user search. Identifier is an
// exact-match filter on the user's identifier (the external ID for
// flex apps); matching semantics live entirely on the server.
type ListUsersParams struct {
	Page       int
	Limit      int
	Identifier string
}

// ListUsersResponse is one page of the user search plus the pagination
// envelope the server reports.
type ListUsersResponse struct {
	Users         []models.ListUsersItem `json:"users"`
	CreatedBefore int64                  `json:"created_before"`
	Limit         int                    `json:"limit"`
	Page          int                    `json:"page"`
	TotalUsers    int                    `json:"total_users"`
}

// GetUserResponse wraps the full user document.
type GetUserResponse struct {
	User models.User `json:"user"`
}

// ListPaginatedUsers searches the app's users.
func ListPaginatedUsers(ctx context.Context, cfg *Configuration, params ListUsersParams) (*ListUsersResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Identifier != "" {
		query.Set("identifier", params.Identifier)
	}
	var out ListUsersResponse
	if err := do(ctx, cfg, http.MethodGet, "/users", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a user by the identity service's own user ID.
func GetUser(ctx context.Context, cfg *Configuration, userID string) (*GetUserResponse, error) {
	var out GetUserResponse
	if err := do(ctx, cfg, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
