package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

type CreateTaskInput struct {
	Title    string
	Content  string
	Status   domain.TaskStatus
	Size     domain.TaskSize
	Priority domain.TaskPriority
	OwnerID  *uuid.UUID
}

type UpdateTaskInput struct {
	Title    *string
	Content  *string
	Status   *domain.TaskStatus
	Size     *domain.TaskSize
	Priority *domain.TaskPriority
	OwnerID  *uuid.UUID
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.ErrTitleRequired
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusOpen
	}
	if input.Size == "" {
		input.Size = domain.TaskSizeM
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if !input.Size.IsValid() {
		return nil, domain.ErrInvalidSize
	}
	if !input.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task := &domain.Task{
		Title:    input.Title,
		Content:  input.Content,
		Status:   input.Status,
		Size:     input.Size,
		Priority: input.Priority,
		OwnerID:  input.OwnerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTaskByTitle(ctx context.Context, title string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

// ListTasks returns all tasks, or only those owned by ownerID when set.
func (s *TaskService) ListTasks(ctx context.Context, ownerID *uuid.UUID) ([]*domain.Task, error) {
	if ownerID != nil {
		return s.taskRepo.ListByOwnerID(ctx, *ownerID)
	}
	return s.taskRepo.List(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Content != nil {
		task.Content = *input.Content
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.Size != nil {
		if !input.Size.IsValid() {
			return nil, domain.ErrInvalidSize
		}
		task.Size = *input.Size
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, domain.ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.OwnerID != nil {
		task.OwnerID = input.OwnerID
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task. A task that another task still depends on
// cannot be deleted; the store's restrict constraint surfaces here as
// ErrTaskInUse.
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if _, err := s.GetTask(ctx, id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrTaskInUse
		}
		return err
	}
	return nil
}

// AddDependency records that taskID depends on dependsOnID. Both tasks
// must exist and be distinct. Cycles are not detected; callers that
// topologically order tasks are responsible for avoiding them.
func (s *TaskService) AddDependency(ctx context.Context, taskID, dependsOnID int) (*domain.Task, error) {
	if taskID == dependsOnID {
		return nil, domain.ErrSelfDependency
	}

	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetTask(ctx, dependsOnID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.AddDependency(ctx, taskID, dependsOnID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) RemoveDependency(ctx context.Context, taskID, dependsOnID int) (*domain.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.RemoveDependency(ctx, taskID, dependsOnID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListDependencies(ctx context.Context, taskID int) ([]*domain.Task, error) {
	return s.taskRepo.ListDependencies(ctx, taskID)
}
