package postgres

import (
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema. The dependency join table is
// registered explicitly so its foreign keys carry the referential
// actions the data model requires: a task's own edges die with it,
// while a task referenced by others cannot be deleted.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.Task{}, "DependsOn", &domain.TaskDependency{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Task{},
		&domain.TaskDependency{},
		&domain.Comment{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Role:    NewRoleRepository(db),
		Task:    NewTaskRepository(db),
		Comment: NewCommentRepository(db),
	}
}
