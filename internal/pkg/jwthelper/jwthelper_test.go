package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/pkg/jwthelper/jwttest"
)

func TestParseKeys(t *testing.T) {
	kp := jwttest.NewKeyPair(t)

	pub, err := ParsePublicKey(kp.EncodedPublic)
	require.NoError(t, err)
	assert.Equal(t, kp.Private.PublicKey.N, pub.N)

	priv, err := ParsePrivateKey(kp.EncodedPrivate)
	require.NoError(t, err)
	assert.Equal(t, kp.Private.D, priv.D)
}

func TestParsePublicKey_Invalid(t *testing.T) {
	_, err := ParsePublicKey("%%%")
	assert.Error(t, err)

	_, err = ParsePublicKey("bm90IGEgcGVt") // "not a pem"
	assert.Error(t, err)
}

func TestGenerateAndVerify(t *testing.T) {
	kp := jwttest.NewKeyPair(t)
	franchiseID := "F2"
	user := domain.User{ID: "u-1", Email: "op@example.com", Role: domain.RoleManager, FranchiseID: &franchiseID}

	token, err := GenerateAccessToken(kp.Private, user, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(&kp.Private.PublicKey, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "op@example.com", claims.Email)
	assert.Equal(t, domain.RoleManager, claims.Role)
	require.NotNil(t, claims.FranchiseID)
	assert.Equal(t, "F2", *claims.FranchiseID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestVerify_AdminTokenHasNoFranchise(t *testing.T) {
	kp := jwttest.NewKeyPair(t)

	token, err := GenerateAccessToken(kp.Private, domain.User{ID: "a", Email: "admin@example.com", Role: domain.RoleAdmin}, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(&kp.Private.PublicKey, token)
	require.NoError(t, err)
	assert.Nil(t, claims.FranchiseID)
}

func TestVerify_Expired(t *testing.T) {
	kp := jwttest.NewKeyPair(t)

	token, err := GenerateAccessToken(kp.Private, domain.User{ID: "u"}, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(&kp.Private.PublicKey, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongKey(t *testing.T) {
	signer := jwttest.NewKeyPair(t)
	other := jwttest.NewKeyPair(t)

	token, err := GenerateAccessToken(signer.Private, domain.User{ID: "u"}, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(&other.Private.PublicKey, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsHMAC(t *testing.T) {
	kp := jwttest.NewKeyPair(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	})
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(&kp.Private.PublicKey, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	kp := jwttest.NewKeyPair(t)

	_, err := VerifyToken(&kp.Private.PublicKey, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
