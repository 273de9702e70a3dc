package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository/postgres"
	"github.com/kwhite/taskboard/internal/service"
	"github.com/kwhite/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation happens before the repository is touched, so no store is
// needed here.
func TestCommentService_Validation(t *testing.T) {
	commentService := service.NewCommentService(nil)
	ctx := context.Background()

	_, err := commentService.CreateComment(ctx, service.CreateCommentInput{
		Content: "orphaned comment",
	})
	assert.ErrorIs(t, err, domain.ErrAuthorRequired)

	_, err = commentService.CreateComment(ctx, service.CreateCommentInput{
		AuthorID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrContentRequired)
}

func TestCommentService_CRUD(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	commentService := service.NewCommentService(repos.Comment)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	task := testutil.NewTaskBuilder().Build(t, testDB.DB)

	created, err := commentService.CreateComment(ctx, service.CreateCommentInput{
		Content:  "looks good to me",
		AuthorID: author.ID,
		TaskID:   &task.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	testutil.NewCommentBuilder(other).WithContent("unrelated").Build(t, testDB.DB)

	t.Run("list by author", func(t *testing.T) {
		comments, err := commentService.ListComments(ctx, &author.ID, nil)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, created.ID, comments[0].ID)
	})

	t.Run("list by task", func(t *testing.T) {
		comments, err := commentService.ListComments(ctx, nil, &task.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, created.ID, comments[0].ID)
	})

	t.Run("update refreshes content", func(t *testing.T) {
		updated, err := commentService.UpdateComment(ctx, created.ID, "revised")
		require.NoError(t, err)
		assert.Equal(t, "revised", updated.Content)

		_, err = commentService.UpdateComment(ctx, created.ID, "")
		assert.ErrorIs(t, err, domain.ErrContentRequired)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, commentService.DeleteComment(ctx, created.ID))

		_, err := commentService.GetComment(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = commentService.DeleteComment(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
