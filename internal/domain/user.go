package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DisplayName  string    `json:"displayName" gorm:"uniqueIndex;not null"`
	Email        *string   `json:"email" gorm:"uniqueIndex"`
	PhoneNumber  *string   `json:"phoneNumber"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Roles    []Role    `json:"roles,omitempty" gorm:"many2many:user_roles"`
	Tasks    []Task    `json:"tasks,omitempty" gorm:"foreignKey:OwnerID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
}

// Role is a named role membership. Users hold roles through the
// user_roles join table; authorization policies match on the name.
type Role struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

const (
	RoleUser     = "User"
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// SeedRoles contains the roles created at startup
var SeedRoles = []string{RoleUser, RoleAdmin, RoleEmployee}
