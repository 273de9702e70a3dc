// Package authz holds the field-level authorization policy applied
// during query execution. Policies are a static table from entity field
// to required role set, loaded once at startup and immutable afterwards;
// evaluation is a pure function of the caller's role set.
package authz

import (
	"github.com/kwhite/taskboard/internal/domain"
)

type Gate struct {
	policies map[string][]string
}

// NewGate builds the policy table. Fields without an entry are readable
// by anyone, including anonymous callers.
func NewGate() *Gate {
	return &Gate{
		policies: map[string][]string{
			policyKey("User", "email"):       {domain.RoleAdmin, domain.RoleEmployee},
			policyKey("User", "phoneNumber"): {domain.RoleAdmin, domain.RoleEmployee},
		},
	}
}

// Allowed reports whether a caller holding the given roles may read
// entity.field. Decisions are not cached; the check is cheap and does
// no I/O.
func (g *Gate) Allowed(roles []string, entity, field string) bool {
	required, ok := g.policies[policyKey(entity, field)]
	if !ok {
		return true
	}
	for _, have := range roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

func policyKey(entity, field string) string {
	return entity + "." + field
}
