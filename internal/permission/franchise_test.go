package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

func adminClaims() domain.Claims {
	return domain.Claims{Subject: "a", Email: "admin@example.com"}
}

func tenantClaims(franchiseID string) domain.Claims {
	return domain.Claims{Subject: "u", Email: "user@example.com", FranchiseID: &franchiseID}
}

func TestPrincipalOf(t *testing.T) {
	assert.Equal(t, Admin{UserID: "a"}, PrincipalOf(adminClaims()))
	assert.Equal(t, TenantUser{UserID: "u", FranchiseID: "F2"}, PrincipalOf(tenantClaims("F2")))
	assert.Equal(t, TenantUser{UserID: "u", FranchiseID: ""}, PrincipalOf(tenantClaims("")))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(adminClaims()))
	assert.False(t, IsAdmin(tenantClaims("F2")))
	assert.False(t, IsAdmin(tenantClaims("")))
}

func TestResolveFranchiseID_Admin(t *testing.T) {
	got, err := ResolveFranchiseID(adminClaims(), "F1")
	require.NoError(t, err)
	assert.Equal(t, "F1", got)
}

func TestResolveFranchiseID_AdminWithoutRequestedID(t *testing.T) {
	_, err := ResolveFranchiseID(adminClaims(), "")
	assert.ErrorIs(t, err, ErrFranchiseIDRequired)
}

func TestResolveFranchiseID_TenantIgnoresRequestedID(t *testing.T) {
	for _, requested := range []string{"", "F2", "F9", "' OR 1=1 --"} {
		got, err := ResolveFranchiseID(tenantClaims("F2"), requested)
		require.NoError(t, err)
		assert.Equal(t, "F2", got, "requested %q", requested)
	}
}

func TestValidateFranchiseAccess_AdminAlwaysPasses(t *testing.T) {
	for _, id := range []string{"", "F1", "F9"} {
		assert.NoError(t, ValidateFranchiseAccess(adminClaims(), id))
	}
}

func TestValidateFranchiseAccess_Tenant(t *testing.T) {
	claims := tenantClaims("F2")

	assert.NoError(t, ValidateFranchiseAccess(claims, "F2"))

	err := ValidateFranchiseAccess(claims, "F9")
	require.ErrorIs(t, err, ErrForbiddenFranchise)
	assert.Equal(t, "You do not have permission to access this franchise's data", err.Error())
}

func TestValidateFranchiseAccess_EmptyTenantFranchiseIsDenied(t *testing.T) {
	claims := tenantClaims("")

	assert.ErrorIs(t, ValidateFranchiseAccess(claims, ""), ErrForbiddenFranchise)
	assert.ErrorIs(t, ValidateFranchiseAccess(claims, "F1"), ErrForbiddenFranchise)
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(adminClaims()))
	assert.ErrorIs(t, RequireAdmin(tenantClaims("F2")), ErrAdminOnly)
}
