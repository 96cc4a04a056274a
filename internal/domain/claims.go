package domain

import "time"

// Claims is the verified content of an access token. A nil FranchiseID marks an
// administrator; any non-nil value, even empty, marks a tenant-scoped operator.
type Claims struct {
	Subject     string    `json:"sub"`
	Email       string    `json:"email"`
	Role        string    `json:"role,omitempty"`
	FranchiseID *string   `json:"franchise_id,omitempty"`
	IssuedAt    time.Time `json:"iat,omitempty"`
	ExpiresAt   time.Time `json:"exp,omitempty"`
}
