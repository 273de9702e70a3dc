package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
)

// UserRepository is the identity-provider capability surface: credential
// lookup and role membership live here, password verification is the
// caller's job.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
	AddToRole(ctx context.Context, userID uuid.UUID, roleName string) error
}

type RoleRepository interface {
	Ensure(ctx context.Context, name string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	GetByTitle(ctx context.Context, title string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int) error
	AddDependency(ctx context.Context, taskID, dependsOnID int) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID int) error
	ListDependencies(ctx context.Context, taskID int) ([]*domain.Task, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int) (*domain.Comment, error)
	List(ctx context.Context) ([]*domain.Comment, error)
	ListByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*domain.Comment, error)
	ListByTaskID(ctx context.Context, taskID int) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int) error
}

type Repositories struct {
	User    UserRepository
	Role    RoleRepository
	Task    TaskRepository
	Comment CommentRepository
}
