package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/service"
)

// Auth resolves the bearer token on the request into a viewer on the
// context. A missing, malformed or invalid token yields an anonymous
// viewer rather than a 401: field-level authorization decides what the
// caller may actually see.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer := domain.AnonymousViewer()

			if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					claims, err := authService.ValidateToken(parts[1])
					if err != nil {
						log.Printf("WARN [middleware.Auth] token rejected: %v", err)
					} else {
						viewer = claims.Viewer()
					}
				}
			}

			ctx := domain.NewViewerContext(r.Context(), viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
