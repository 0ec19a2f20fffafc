package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/testdb"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-with-enough-bytes"

func newTestAuthService(t *testing.T) (*authService, repository.AdminRepository) {
	t.Helper()

	repo := repository.NewAdminRepository(testdb.Open(t))
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.CreateIfMissing(context.Background(), &models.Admin{Email: "a@x.com", Password: string(hash)})
	require.NoError(t, err)

	svc := NewAuthService(repo, testSecret, 24*time.Hour).(*authService)
	return svc, repo
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	result, err := svc.Login(context.Background(), "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, AdminIdentity{ID: 1, Email: "a@x.com"}, result.Admin)
	assert.Len(t, strings.Split(result.AccessToken, "."), 3)

	identity, err := svc.VerifyToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, &AdminIdentity{ID: 1, Email: "a@x.com"}, identity)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, wrongPassword := svc.Login(ctx, "a@x.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret123")
	_, caseMismatch := svc.Login(ctx, "A@X.COM", "secret123")

	for _, err := range []error{wrongPassword, unknownEmail, caseMismatch} {
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnauthorized)
		assert.Equal(t, errors.InvalidCredentialsMessage, err.Error())
	}
}

func TestVerifyTokenExpiry(t *testing.T) {
	svc, _ := newTestAuthService(t)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.IssueToken(AdminIdentity{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(23*time.Hour + 59*time.Minute) }
	_, err = svc.VerifyToken(token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(24 * time.Hour) }
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)

	svc.now = func() time.Time { return issued.Add(24*time.Hour + time.Second) }
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)

	svc.now = func() time.Time { return issued.Add(-time.Minute) }
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, errors.ErrUnauthorized, "token issued in the future")
}

func TestVerifyTokenRejectsForgeries(t *testing.T) {
	svc, _ := newTestAuthService(t)
	token, err := svc.IssueToken(AdminIdentity{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)
	parts := strings.Split(token, ".")

	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":2,"email":"evil@x.com","iat":1,"exp":99999999999}`))
	flipped := []byte(parts[2])
	if flipped[0] == 'A' {
		flipped[0] = 'B'
	} else {
		flipped[0] = 'A'
	}

	other := NewAuthService(nil, "another-secret-entirely", time.Hour)
	foreign, err := other.IssueToken(AdminIdentity{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": 1, "email": "a@x.com", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": 1, "email": "a@x.com", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1, "email": "a@x.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"empty":            "",
		"garbage":          "not-a-token",
		"tampered payload": parts[0] + "." + forged + "." + parts[2],
		"tampered sig":     parts[0] + "." + parts[1] + "." + string(flipped),
		"foreign secret":   foreign,
		"alg none":         noneToken,
		"other alg":        hs512,
		"missing exp":      noExp,
		"missing sub":      noSub,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			identity, err := svc.VerifyToken(tok)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, errors.ErrUnauthorized)
			assert.Equal(t, UnauthorizedMessage, err.Error())
		})
	}
}

func TestVerifyTokenDoesNotConsultDatabase(t *testing.T) {
	svc := NewAuthService(nil, testSecret, time.Hour)
	token, err := svc.IssueToken(AdminIdentity{ID: 7, Email: "gone@x.com"})
	require.NoError(t, err)

	identity, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.ID)
}

func TestAdminContext(t *testing.T) {
	_, ok := AdminFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithAdmin(context.Background(), &AdminIdentity{ID: 1, Email: "a@x.com"})
	identity, ok := AdminFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", identity.Email)
}
