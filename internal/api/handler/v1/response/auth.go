package response

import "github.com/vietanh2810/franchise-api/internal/domain"

type LoginResponse struct {
	User domain.User `json:"user"`
}

type SessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	Claims        *domain.Claims `json:"claims,omitempty"`
}

type ImportResponse struct {
	Updated int `json:"updated"`
}
