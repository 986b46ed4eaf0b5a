package auth

import (
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func testIdentity() entity.Identity {
	return entity.Identity{
		ID:       uuid.New(),
		Email:    "a@x.io",
		FullName: "Ann Lee",
		Role:     entity.RoleAdmin,
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	identity := testIdentity()

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, *got)
}

func TestJWTService_DefaultTTLIsThirtyDays(t *testing.T) {
	svc := newTestJWTService(t, 0)
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testIdentity())
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(30*24*time.Hour).Unix(), exp.Unix())
}

func TestJWTService_Verify_Failures(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	identity := testIdentity()

	valid, err := svc.Issue(identity)
	require.NoError(t, err)

	other := newTestJWTService(t, time.Hour)
	other.secret = []byte("a_different_secret_for_the_same_claims")
	foreign, err := other.Issue(identity)
	require.NoError(t, err)

	expiredSvc := newTestJWTService(t, time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue(identity)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  identity.ID.String(),
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  identity.ID.String(),
		"role": "root",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "not-a-uuid",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  identity.ID.String(),
		"role": "user",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "tampered", token: valid + "x"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "alg none", token: noneToken},
		{name: "unknown role", token: badRole},
		{name: "malformed subject", token: badSubject},
		{name: "missing expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Verify(tt.token)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}
