package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	email       string
	phoneNumber string
	password    string
	roles       []string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		displayName: fmt.Sprintf("testuser_%s", suffix),
		email:       fmt.Sprintf("testuser_%s@example.com", suffix),
		password:    "Password123!",
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPhoneNumber sets the phone number
func (b *UserBuilder) WithPhoneNumber(phone string) *UserBuilder {
	b.phoneNumber = phone
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRoles assigns role memberships, creating the roles if needed
func (b *UserBuilder) WithRoles(roles ...string) *UserBuilder {
	b.roles = roles
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
	}
	if b.email != "" {
		user.Email = &b.email
	}
	if b.phoneNumber != "" {
		user.PhoneNumber = &b.phoneNumber
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	for _, name := range b.roles {
		role := domain.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			t.Fatalf("failed to ensure role %s: %v", name, err)
		}
		if err := db.Model(user).Association("Roles").Append(&role); err != nil {
			t.Fatalf("failed to assign role %s: %v", name, err)
		}
	}

	return user, b.password
}

// TaskBuilder creates test tasks with a builder pattern
type TaskBuilder struct {
	title    string
	content  string
	status   domain.TaskStatus
	size     domain.TaskSize
	priority domain.TaskPriority
	ownerID  *uuid.UUID
}

// NewTaskBuilder creates a new TaskBuilder with default values
func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{
		title:    fmt.Sprintf("task_%s", uuid.New().String()[:8]),
		content:  "test task content",
		status:   domain.TaskStatusOpen,
		size:     domain.TaskSizeM,
		priority: domain.TaskPriorityMedium,
	}
}

// WithTitle sets the title
func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.title = title
	return b
}

// WithContent sets the content
func (b *TaskBuilder) WithContent(content string) *TaskBuilder {
	b.content = content
	return b
}

// WithStatus sets the status
func (b *TaskBuilder) WithStatus(status domain.TaskStatus) *TaskBuilder {
	b.status = status
	return b
}

// WithOwner sets the owning user
func (b *TaskBuilder) WithOwner(user *domain.User) *TaskBuilder {
	b.ownerID = &user.ID
	return b
}

// Build creates the task in the database
func (b *TaskBuilder) Build(t *testing.T, db *gorm.DB) *domain.Task {
	t.Helper()

	task := &domain.Task{
		Title:    b.title,
		Content:  b.content,
		Status:   b.status,
		Size:     b.size,
		Priority: b.priority,
		OwnerID:  b.ownerID,
	}

	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	return task
}

// CommentBuilder creates test comments with a builder pattern
type CommentBuilder struct {
	content  string
	authorID uuid.UUID
	taskID   *int
}

// NewCommentBuilder creates a new CommentBuilder with default values
func NewCommentBuilder(author *domain.User) *CommentBuilder {
	return &CommentBuilder{
		content:  "test comment",
		authorID: author.ID,
	}
}

// WithContent sets the content
func (b *CommentBuilder) WithContent(content string) *CommentBuilder {
	b.content = content
	return b
}

// OnTask attaches the comment to a task
func (b *CommentBuilder) OnTask(task *domain.Task) *CommentBuilder {
	b.taskID = &task.ID
	return b
}

// Build creates the comment in the database
func (b *CommentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Comment {
	t.Helper()

	comment := &domain.Comment{
		Content:  b.content,
		AuthorID: b.authorID,
		TaskID:   b.taskID,
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	return comment
}
