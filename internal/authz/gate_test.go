package authz_test

import (
	"testing"

	"github.com/kwhite/taskboard/internal/authz"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGate_Allowed(t *testing.T) {
	gate := authz.NewGate()

	tests := []struct {
		name   string
		roles  []string
		entity string
		field  string
		want   bool
	}{
		{
			name:   "admin can read email",
			roles:  []string{domain.RoleAdmin},
			entity: "User",
			field:  "email",
			want:   true,
		},
		{
			name:   "employee can read email",
			roles:  []string{domain.RoleEmployee},
			entity: "User",
			field:  "email",
			want:   true,
		},
		{
			name:   "plain user cannot read email",
			roles:  []string{domain.RoleUser},
			entity: "User",
			field:  "email",
			want:   false,
		},
		{
			name:   "anonymous cannot read email",
			roles:  nil,
			entity: "User",
			field:  "email",
			want:   false,
		},
		{
			name:   "plain user cannot read phone number",
			roles:  []string{domain.RoleUser},
			entity: "User",
			field:  "phoneNumber",
			want:   false,
		},
		{
			name:   "employee can read phone number",
			roles:  []string{domain.RoleEmployee},
			entity: "User",
			field:  "phoneNumber",
			want:   true,
		},
		{
			name:   "ungated field defaults to allow",
			roles:  nil,
			entity: "User",
			field:  "displayName",
			want:   true,
		},
		{
			name:   "ungated entity defaults to allow",
			roles:  nil,
			entity: "Task",
			field:  "title",
			want:   true,
		},
		{
			name:   "one matching role among several is enough",
			roles:  []string{domain.RoleUser, domain.RoleEmployee},
			entity: "User",
			field:  "email",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Allowed(tt.roles, tt.entity, tt.field))
		})
	}
}
