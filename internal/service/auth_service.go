package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/config"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect credentials")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidToken      = errors.New("invalid token")
)

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	DisplayName string
	Email       string
	PhoneNumber string
	Password    string
}

type SignInResult struct {
	User  *domain.User
	Roles []string
	Token string
}

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
	Roles       []string
	JTI         string
	ExpiresAt   time.Time
}

// Viewer converts the claims into the caller identity used during
// query execution.
func (c *TokenClaims) Viewer() *domain.Viewer {
	return &domain.Viewer{
		UserID:      c.UserID,
		DisplayName: c.DisplayName,
		Email:       c.Email,
		Roles:       c.Roles,
	}
}

// SignIn authenticates an email/password pair and issues a session
// token for the matched user. It is anonymous-accessible: no prior
// session is required.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}

	roles, err := s.userRepo.ListRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user, roles)
	if err != nil {
		return nil, err
	}

	return &SignInResult{User: user, Roles: roles, Token: token}, nil
}

// IssueToken signs a session token for an already-authenticated user.
// Claims are deterministic apart from jti, which is minted fresh per
// issuance for log correlation. Nothing is persisted.
func (s *AuthService) IssueToken(user *domain.User, roles []string) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", errors.New("signing secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         user.ID.String(),
		"unique_name": user.ID.String(),
		"nameid":      user.ID.String(),
		"jti":         uuid.New().String(),
		"iss":         s.cfg.JWTIssuer,
		"aud":         s.cfg.JWTAudience,
		"iat":         now.Unix(),
		"exp":         now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"roles":       roles,
	}
	if user.Email != nil {
		claims["email"] = *user.Email
	}
	if user.DisplayName != "" {
		claims["name"] = user.DisplayName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken verifies the signature, issuer, audience and expiry of
// a presented token and returns its decoded claims.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithIssuer(s.cfg.JWTIssuer),
		jwt.WithAudience(s.cfg.JWTAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return decodeClaims(claims)
}

func decodeClaims(claims jwt.MapClaims) (*TokenClaims, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	out := &TokenClaims{UserID: userID}

	if jti, ok := claims["jti"].(string); ok {
		out.JTI = jti
	}
	if name, ok := claims["name"].(string); ok {
		out.DisplayName = name
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				out.Roles = append(out.Roles, role)
			}
		}
	}

	return out, nil
}

// Register creates a user with a bcrypt-hashed credential. Used by the
// startup seed and tests; there is no public sign-up surface.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Email != "" {
		existing, err := s.userRepo.GetByEmail(ctx, input.Email)
		if err == nil && existing != nil {
			return nil, ErrEmailExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  input.DisplayName,
		PasswordHash: string(hashedPassword),
	}
	if input.Email != "" {
		user.Email = &input.Email
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = &input.PhoneNumber
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
