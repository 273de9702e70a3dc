package service

import (
	"github.com/kwhite/taskboard/internal/config"
	"github.com/kwhite/taskboard/internal/repository"
)

type Services struct {
	Auth    *AuthService
	User    *UserService
	Task    *TaskService
	Comment *CommentService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, cfg),
		User:    NewUserService(repos.User),
		Task:    NewTaskService(repos.Task),
		Comment: NewCommentService(repos.Comment),
	}
}
