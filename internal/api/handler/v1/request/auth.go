package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	errInvalidPassword = errors.New("must be at least 8 characters and contain at least one letter and one number")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

var strongPassword = validation.By(func(value interface{}) error {
	password, _ := value.(string)
	if password == "" {
		return nil
	}

	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
})

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type RegisterAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (req *RegisterAdminRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email, validation.Length(0, 255)),
		validation.Field(&req.Password, validation.Required, strongPassword),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
}

type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	FranchiseID string `json:"franchise_id"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email, validation.Length(0, 255)),
		validation.Field(&req.Password, validation.Required, strongPassword),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleAdmin, domain.RoleManager, domain.RoleStaff)),
		validation.Field(&req.FranchiseID, is.UUID),
	)
}

func (req *CreateUserRequest) User() domain.User {
	user := domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	}
	if req.FranchiseID != "" {
		franchiseID := req.FranchiseID
		user.FranchiseID = &franchiseID
	}

	return user
}
