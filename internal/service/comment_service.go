package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository"
	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

type CreateCommentInput struct {
	Content  string
	AuthorID uuid.UUID
	TaskID   *int
}

// CreateComment validates the input before anything reaches the store:
// a comment always has an author and non-empty content.
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	if input.AuthorID == uuid.Nil {
		return nil, domain.ErrAuthorRequired
	}
	if input.Content == "" {
		return nil, domain.ErrContentRequired
	}

	comment := &domain.Comment{
		Content:  input.Content,
		AuthorID: input.AuthorID,
		TaskID:   input.TaskID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, id int) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

// ListComments filters by author or task when either id is set;
// both unset returns every comment.
func (s *CommentService) ListComments(ctx context.Context, authorID *uuid.UUID, taskID *int) ([]*domain.Comment, error) {
	switch {
	case authorID != nil:
		return s.commentRepo.ListByAuthorID(ctx, *authorID)
	case taskID != nil:
		return s.commentRepo.ListByTaskID(ctx, *taskID)
	default:
		return s.commentRepo.List(ctx)
	}
}

func (s *CommentService) UpdateComment(ctx context.Context, id int, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, domain.ErrContentRequired
	}

	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	if _, err := s.GetComment(ctx, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}
