package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danirb97/P4-Quiz/internal/quiz"
)

// Store implements quiz.Repository on a sqlite database through GORM.
type Store struct {
	db *gorm.DB
}

func New(path string) (*Store, error) {
	const op = "sqlite.New"

	if strings.TrimSpace(path) == "" {
		path = "quizzes.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Single connection keeps sqlite writes serialized; this is an
	// interactive single-user tool.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&quiz.Quiz{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Create(ctx context.Context, q *quiz.Quiz) error {
	const op = "sqlite.Create"

	if err := quiz.Validate(q); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) FindAll(ctx context.Context) ([]quiz.Quiz, error) {
	const op = "sqlite.FindAll"

	var all []quiz.Quiz
	if err := s.db.WithContext(ctx).Order("id").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return all, nil
}

func (s *Store) FindByID(ctx context.Context, id uint) (*quiz.Quiz, error) {
	const op = "sqlite.FindByID"

	var q quiz.Quiz
	err := s.db.WithContext(ctx).First(&q, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quiz.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &q, nil
}

func (s *Store) DeleteByID(ctx context.Context, id uint) (int64, error) {
	const op = "sqlite.DeleteByID"

	res := s.db.WithContext(ctx).Delete(&quiz.Quiz{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) Save(ctx context.Context, q *quiz.Quiz) error {
	const op = "sqlite.Save"

	if err := quiz.Validate(q); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(q).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
