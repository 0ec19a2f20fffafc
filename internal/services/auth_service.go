package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"
	"portfolio-api/internal/repository"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const AdminContextKey contextKey = "admin"

// UnauthorizedMessage is returned by the session guard for every token failure.
const UnauthorizedMessage = "Unauthorized"

// AdminIdentity is the public part of an administrator, as carried in a session token.
type AdminIdentity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type LoginResult struct {
	AccessToken string        `json:"access_token"`
	Admin       AdminIdentity `json:"admin"`
}

type AuthService interface {
	// ValidateAdmin checks email and password against the stored hash. Unknown email
	// and wrong password fail with the same error.
	ValidateAdmin(ctx context.Context, email, password string) (*AdminIdentity, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	IssueToken(identity AdminIdentity) (string, error)
	// VerifyToken checks signature and expiry only; it never touches the database.
	VerifyToken(token string) (*AdminIdentity, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(adminRepo repository.AdminRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareWithDummy spends the same bcrypt work as a real comparison so that an
// unknown email is not distinguishable by response time.
func compareWithDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-placeholder-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *authService) ValidateAdmin(ctx context.Context, email, password string) (*AdminIdentity, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			compareWithDummy(password)
			return nil, errors.Unauthorized(errors.InvalidCredentialsMessage)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, errors.Unauthorized(errors.InvalidCredentialsMessage)
	}

	return identityOf(admin), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	identity, err := s.ValidateAdmin(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(*identity)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, Admin: *identity}, nil
}

func (s *authService) IssueToken(identity AdminIdentity) (string, error) {
	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"iat":   issuedAt.Unix(),
		"exp":   issuedAt.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func (s *authService) VerifyToken(tokenString string) (*AdminIdentity, error) {
	invalid := errors.Unauthorized(UnauthorizedMessage)

	// Time-based claims are checked below against s.now.
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		UseJSONNumber:        true,
		SkipClaimsValidation: true,
	}
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, invalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, invalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, invalid
	}

	now := s.now().Unix()
	exp, ok := numericClaim(claims, "exp")
	if !ok || now >= exp {
		return nil, invalid
	}
	if iat, ok := numericClaim(claims, "iat"); ok && iat > now {
		return nil, invalid
	}

	sub, ok := numericClaim(claims, "sub")
	if !ok || sub <= 0 {
		return nil, invalid
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, invalid
	}

	return &AdminIdentity{ID: uint(sub), Email: email}, nil
}

func numericClaim(claims jwt.MapClaims, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func identityOf(admin *models.Admin) *AdminIdentity {
	return &AdminIdentity{ID: admin.ID, Email: admin.Email}
}

// WithAdmin attaches the decoded session identity to ctx.
func WithAdmin(ctx context.Context, identity *AdminIdentity) context.Context {
	return context.WithValue(ctx, AdminContextKey, identity)
}

// AdminFromContext returns the identity attached by WithAdmin.
func AdminFromContext(ctx context.Context) (*AdminIdentity, bool) {
	identity, ok := ctx.Value(AdminContextKey).(*AdminIdentity)
	return identity, ok && identity != nil
}
