package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusClosed     TaskStatus = "closed"
)

// IsValid checks if a status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusBlocked, TaskStatusClosed:
		return true
	}
	return false
}

// TaskSize is a t-shirt size estimate
type TaskSize string

const (
	TaskSizeXS TaskSize = "xs"
	TaskSizeS  TaskSize = "s"
	TaskSizeM  TaskSize = "m"
	TaskSizeL  TaskSize = "l"
	TaskSizeXL TaskSize = "xl"
)

// IsValid checks if a size is valid
func (s TaskSize) IsValid() bool {
	switch s {
	case TaskSizeXS, TaskSizeS, TaskSizeM, TaskSizeL, TaskSizeXL:
		return true
	}
	return false
}

// TaskPriority orders tasks by urgency
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid checks if a priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID        int          `json:"id" gorm:"primaryKey"`
	Title     string       `json:"title" gorm:"not null;index"`
	Content   string       `json:"content" gorm:"not null"`
	Status    TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	Size      TaskSize     `json:"size" gorm:"type:varchar(5);not null;default:'m'"`
	Priority  TaskPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	OwnerID   *uuid.UUID   `json:"ownerId" gorm:"type:uuid;index"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// Relations
	Owner     *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Comments  []Comment `json:"comments,omitempty" gorm:"foreignKey:TaskID"`
	DependsOn []*Task   `json:"dependsOn,omitempty" gorm:"many2many:task_dependencies;joinForeignKey:TaskID;joinReferences:DependsOnID"`
}

// TaskDependency is the explicit join row for the task self-reference.
// Deleting a task removes its own outgoing edges via the CASCADE side;
// deleting a task that another task still depends on is blocked by the
// RESTRICT side. Cycles are not detected at this level.
type TaskDependency struct {
	TaskID      int       `json:"taskId" gorm:"primaryKey"`
	DependsOnID int       `json:"dependsOnId" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"createdAt"`

	Task      *Task `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	DependsOn *Task `json:"-" gorm:"foreignKey:DependsOnID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (TaskDependency) TableName() string {
	return "task_dependencies"
}
