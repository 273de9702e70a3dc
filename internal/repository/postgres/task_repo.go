package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByTitle(ctx context.Context, title string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).First(&task, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes the task row. The task's own dependency edges cascade
// away with it; if another task still depends on this one the RESTRICT
// constraint rejects the delete with gorm.ErrForeignKeyViolated.
func (r *taskRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *taskRepository) AddDependency(ctx context.Context, taskID, dependsOnID int) error {
	edge := domain.TaskDependency{TaskID: taskID, DependsOnID: dependsOnID}
	return r.db.WithContext(ctx).Create(&edge).Error
}

func (r *taskRepository) RemoveDependency(ctx context.Context, taskID, dependsOnID int) error {
	return r.db.WithContext(ctx).
		Delete(&domain.TaskDependency{}, "task_id = ? AND depends_on_id = ?", taskID, dependsOnID).Error
}

func (r *taskRepository) ListDependencies(ctx context.Context, taskID int) ([]*domain.Task, error) {
	var deps []*domain.Task
	task := domain.Task{ID: taskID}
	err := r.db.WithContext(ctx).Model(&task).Order("tasks.id").Association("DependsOn").Find(&deps)
	if err != nil {
		return nil, err
	}
	return deps, nil
}
