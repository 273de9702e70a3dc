package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null;index"`
	TaskID    *int      `json:"taskId" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Task   *Task `json:"-" gorm:"foreignKey:TaskID"`
}
