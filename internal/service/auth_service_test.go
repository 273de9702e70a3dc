package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository/postgres"
	"github.com/kwhite/taskboard/internal/service"
	"github.com/kwhite/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignIn(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithDisplayName("TestUser").
		WithEmail("testuser@example.com").
		WithPassword("Password123!").
		WithRoles(domain.RoleUser).
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful sign in",
			email:    "testuser@example.com",
			password: "Password123!",
		},
		{
			name:     "wrong password",
			email:    "testuser@example.com",
			password: "WrongPassword!",
			wantErr:  service.ErrIncorrectPassword,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "Password123!",
			wantErr:  service.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.SignIn(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, []string{domain.RoleUser}, result.Roles)
		})
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg)

	email := "roundtrip@example.com"
	user := &domain.User{
		ID:          uuid.New(),
		DisplayName: "RoundTrip",
		Email:       &email,
	}
	roles := []string{domain.RoleAdmin, domain.RoleUser}

	token, err := authService.IssueToken(user, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "RoundTrip", claims.DisplayName)
	assert.Equal(t, email, claims.Email)
	assert.ElementsMatch(t, roles, claims.Roles)
	assert.NotEmpty(t, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(4*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestAuthService_TokenJTIUniqueness(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg)

	user := &domain.User{ID: uuid.New(), DisplayName: "JTIUser"}
	roles := []string{domain.RoleUser}

	first, err := authService.IssueToken(user, roles)
	require.NoError(t, err)
	second, err := authService.IssueToken(user, roles)
	require.NoError(t, err)

	firstClaims, err := authService.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := authService.ValidateToken(second)
	require.NoError(t, err)

	// Two issuances for the same user differ only in jti.
	assert.NotEqual(t, firstClaims.JTI, secondClaims.JTI)
	assert.Equal(t, firstClaims.UserID, secondClaims.UserID)
	assert.Equal(t, firstClaims.DisplayName, secondClaims.DisplayName)
	assert.Equal(t, firstClaims.Email, secondClaims.Email)
	assert.Equal(t, firstClaims.Roles, secondClaims.Roles)
	assert.WithinDuration(t, firstClaims.ExpiresAt, secondClaims.ExpiresAt, 2*time.Second)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.JWTExpirationHours = -1
	authService := service.NewAuthService(nil, cfg)

	user := &domain.User{ID: uuid.New(), DisplayName: "Expired"}

	token, err := authService.IssueToken(user, nil)
	require.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAuthService_WrongSecret(t *testing.T) {
	issuerCfg := testutil.TestConfig()
	issuer := service.NewAuthService(nil, issuerCfg)

	verifierCfg := testutil.TestConfig()
	verifierCfg.JWTSecret = "a-completely-different-secret"
	verifier := service.NewAuthService(nil, verifierCfg)

	user := &domain.User{ID: uuid.New(), DisplayName: "Tampered"}

	token, err := issuer.IssueToken(user, nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, err := authService.Register(ctx, service.RegisterInput{
		DisplayName: "Registered",
		Email:       "registered@example.com",
		Password:    "Password123!",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "registered@example.com", *user.Email)

	// Same email again is rejected before hitting the store's constraint.
	_, err = authService.Register(ctx, service.RegisterInput{
		DisplayName: "Other",
		Email:       "registered@example.com",
		Password:    "Password123!",
	})
	assert.ErrorIs(t, err, service.ErrEmailExists)
}
