package domain

import (
	"context"

	"github.com/google/uuid"
)

// Viewer is the caller's resolved identity for the current operation,
// either decoded from a validated bearer token or injected directly for
// server-side and test execution.
type Viewer struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email,omitempty"`
	Roles       []string  `json:"roles"`
}

// AnonymousViewer returns a viewer with no identity and no roles.
func AnonymousViewer() *Viewer {
	return &Viewer{}
}

// IsAnonymous reports whether the viewer carries no authenticated identity.
func (v *Viewer) IsAnonymous() bool {
	return v == nil || v.UserID == uuid.Nil
}

// HasRole reports whether the viewer holds the named role.
func (v *Viewer) HasRole(name string) bool {
	if v == nil {
		return false
	}
	for _, r := range v.Roles {
		if r == name {
			return true
		}
	}
	return false
}

type viewerContextKey struct{}

// NewViewerContext returns a context carrying the viewer.
func NewViewerContext(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey{}, v)
}

// ViewerFromContext extracts the viewer from the context. Requests that
// never passed through authentication resolve as anonymous.
func ViewerFromContext(ctx context.Context) *Viewer {
	if v, ok := ctx.Value(viewerContextKey{}).(*Viewer); ok && v != nil {
		return v
	}
	return AnonymousViewer()
}
