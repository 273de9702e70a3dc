package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.userRepo.ListRoles(ctx, userID)
}

func (s *UserService) AddToRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	return s.userRepo.AddToRole(ctx, userID, roleName)
}
