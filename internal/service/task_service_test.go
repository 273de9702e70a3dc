package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository/postgres"
	"github.com/kwhite/taskboard/internal/service"
	"github.com/kwhite/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateTask(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.CreateTaskInput
		wantErr error
	}{
		{
			name: "defaults applied",
			input: service.CreateTaskInput{
				Title:   "write release notes",
				Content: "summarize the changes",
			},
		},
		{
			name: "explicit enums",
			input: service.CreateTaskInput{
				Title:    "fix login bug",
				Content:  "sessions drop after an hour",
				Status:   domain.TaskStatusInProgress,
				Size:     domain.TaskSizeL,
				Priority: domain.TaskPriorityHigh,
			},
		},
		{
			name:    "title required",
			input:   service.CreateTaskInput{Content: "no title"},
			wantErr: domain.ErrTitleRequired,
		},
		{
			name: "invalid status rejected",
			input: service.CreateTaskInput{
				Title:   "bad status",
				Content: "x",
				Status:  domain.TaskStatus("archived"),
			},
			wantErr: domain.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := taskService.CreateTask(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, task.ID)
			assert.False(t, task.CreatedAt.IsZero(), "CreatedAt must be stamped on create")
			assert.False(t, task.UpdatedAt.IsZero(), "UpdatedAt must be stamped on create")
			if tt.input.Status == "" {
				assert.Equal(t, domain.TaskStatusOpen, task.Status)
				assert.Equal(t, domain.TaskSizeM, task.Size)
				assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
			}
		})
	}
}

func TestTaskService_UpdateTask(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task)
	ctx := context.Background()

	task := testutil.NewTaskBuilder().WithTitle("initial title").Build(t, testDB.DB)
	before := task.UpdatedAt

	time.Sleep(50 * time.Millisecond)

	newTitle := "revised title"
	newStatus := domain.TaskStatusClosed
	updated, err := taskService.UpdateTask(ctx, task.ID, service.UpdateTaskInput{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, "revised title", updated.Title)
	assert.Equal(t, domain.TaskStatusClosed, updated.Status)
	assert.True(t, updated.UpdatedAt.After(before), "UpdatedAt must be refreshed on update")

	badStatus := domain.TaskStatus("nope")
	_, err = taskService.UpdateTask(ctx, task.ID, service.UpdateTaskInput{Status: &badStatus})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = taskService.UpdateTask(ctx, 99999, service.UpdateTaskInput{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskService_Dependencies(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task)
	ctx := context.Background()

	base := testutil.NewTaskBuilder().WithTitle("base").Build(t, testDB.DB)
	dependent := testutil.NewTaskBuilder().WithTitle("dependent").Build(t, testDB.DB)

	t.Run("self dependency rejected", func(t *testing.T) {
		_, err := taskService.AddDependency(ctx, base.ID, base.ID)
		assert.ErrorIs(t, err, domain.ErrSelfDependency)
	})

	t.Run("missing endpoint rejected", func(t *testing.T) {
		_, err := taskService.AddDependency(ctx, dependent.ID, 99999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("edge created and listed", func(t *testing.T) {
		_, err := taskService.AddDependency(ctx, dependent.ID, base.ID)
		require.NoError(t, err)

		deps, err := taskService.ListDependencies(ctx, dependent.ID)
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Equal(t, base.ID, deps[0].ID)
	})

	t.Run("depended-upon task cannot be deleted", func(t *testing.T) {
		err := taskService.DeleteTask(ctx, base.ID)
		assert.ErrorIs(t, err, domain.ErrTaskInUse)
	})

	t.Run("deleting the dependent task cascades its own edges", func(t *testing.T) {
		require.NoError(t, taskService.DeleteTask(ctx, dependent.ID))

		var edges int64
		require.NoError(t, testDB.DB.Model(&domain.TaskDependency{}).Count(&edges).Error)
		assert.Zero(t, edges)

		// The previously blocked task can now be removed.
		require.NoError(t, taskService.DeleteTask(ctx, base.ID))
	})
}
