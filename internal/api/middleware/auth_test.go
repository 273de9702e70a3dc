package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/api/middleware"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/service"
	"github.com/kwhite/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(nil, cfg)

	user := &domain.User{ID: uuid.New(), DisplayName: "MiddlewareUser"}
	token, err := authService.IssueToken(user, []string{domain.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantAnon   bool
	}{
		{
			name:     "no header resolves anonymous",
			wantAnon: true,
		},
		{
			name:       "valid bearer token resolves the viewer",
			authHeader: "Bearer " + token,
			wantAnon:   false,
		},
		{
			name:       "garbage token resolves anonymous",
			authHeader: "Bearer not-a-real-token",
			wantAnon:   true,
		},
		{
			name:       "malformed header resolves anonymous",
			authHeader: token,
			wantAnon:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var viewer *domain.Viewer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				viewer = domain.ViewerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middleware.Auth(authService)(next).ServeHTTP(rec, req)

			// Authentication never blocks the request itself.
			assert.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, viewer)

			if tt.wantAnon {
				assert.True(t, viewer.IsAnonymous())
				assert.Empty(t, viewer.Roles)
			} else {
				assert.Equal(t, user.ID, viewer.UserID)
				assert.Equal(t, "MiddlewareUser", viewer.DisplayName)
				assert.True(t, viewer.HasRole(domain.RoleAdmin))
			}
		})
	}
}
