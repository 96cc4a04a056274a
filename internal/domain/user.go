package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	FranchiseID *string   `json:"franchise_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Session is what a successful login or refresh hands back to the handler.
type Session struct {
	User         User
	AccessToken  string
	RefreshToken string
}
