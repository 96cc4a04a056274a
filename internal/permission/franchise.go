// Package permission holds the franchise access policy of the food ordering
// API. Other domains keep their own rules and must not import it.
package permission

import (
	"github.com/vietanh2810/franchise-api/internal/apperr"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

var (
	ErrFranchiseIDRequired = apperr.BadRequest("FRANCHISE_ID_REQUIRED", "franchise_id is required for administrators")
	ErrForbiddenFranchise  = apperr.Forbidden("FORBIDDEN_FRANCHISE", "You do not have permission to access this franchise's data")
	ErrAdminOnly           = apperr.Forbidden("ADMIN_ONLY", "This action requires administrator privileges")
)

// Principal is either Admin or TenantUser.
type Principal interface {
	principal()
}

// Admin works across every franchise.
type Admin struct {
	UserID string
}

// TenantUser is confined to FranchiseID. FranchiseID may be empty when the token
// carried an empty franchise_id; such a user can access nothing.
type TenantUser struct {
	UserID      string
	FranchiseID string
}

func (Admin) principal()      {}
func (TenantUser) principal() {}

func PrincipalOf(claims domain.Claims) Principal {
	if claims.FranchiseID == nil {
		return Admin{UserID: claims.Subject}
	}

	return TenantUser{UserID: claims.Subject, FranchiseID: *claims.FranchiseID}
}

func IsAdmin(claims domain.Claims) bool {
	_, ok := PrincipalOf(claims).(Admin)

	return ok
}

// ResolveFranchiseID returns the franchise a request operates on. Tenant users
// always get their own franchise whatever they asked for.
func ResolveFranchiseID(claims domain.Claims, requestedID string) (string, error) {
	switch p := PrincipalOf(claims).(type) {
	case Admin:
		if requestedID == "" {
			return "", ErrFranchiseIDRequired
		}
		return requestedID, nil
	case TenantUser:
		return p.FranchiseID, nil
	}

	return "", ErrForbiddenFranchise
}

func ValidateFranchiseAccess(claims domain.Claims, resourceFranchiseID string) error {
	switch p := PrincipalOf(claims).(type) {
	case Admin:
		return nil
	case TenantUser:
		if p.FranchiseID == "" || p.FranchiseID != resourceFranchiseID {
			return ErrForbiddenFranchise
		}
		return nil
	}

	return ErrForbiddenFranchise
}

func RequireAdmin(claims domain.Claims) error {
	if !IsAdmin(claims) {
		return ErrAdminOnly
	}

	return nil
}
