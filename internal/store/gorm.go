package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"user-management-api/internal/constants"
	"user-management-api/internal/models"
)

// gormStore persists accounts through a gorm.DB handle. The handle must be
// opened with TranslateError enabled so duplicate-key failures surface as
// gorm.ErrDuplicatedKey regardless of dialect.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open database handle in a UserStore.
func NewGormStore(db *gorm.DB) UserStore {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *gormStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormStore) UpdateStatusByEmail(ctx context.Context, email string, status constants.UserStatus) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) UpdateStatusByIDs(ctx context.Context, ids []uint, status constants.UserStatus) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ?", ids).
		Update("status", status).Error
}

func (s *gormStore) TouchLastLogin(ctx context.Context, id uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", &now).Error
}

func (s *gormStore) DeleteByIDs(ctx context.Context, ids []uint) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, ids).Error
}
