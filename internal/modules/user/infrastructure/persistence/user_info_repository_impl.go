package persistence

import (
	"context"

	"HealthPredict/internal/modules/user/domain/entity"
	"HealthPredict/internal/modules/user/domain/repository"

	"gorm.io/gorm"
)

type userInfoRepositoryImpl struct {
	db *gorm.DB
}

func NewUserInfoRepository(db *gorm.DB) repository.UserInfoRepository {
	return &userInfoRepositoryImpl{db: db}
}

func (r *userInfoRepositoryImpl) CreateUserInfo(ctx context.Context, user *entity.UserInfo) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserInfoByEmail 登录用，包含密码哈希
func (r *userInfoRepositoryImpl) GetUserInfoByEmail(ctx context.Context, email string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) GetUserInfoByUsername(ctx context.Context, username string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) GetUserInfoByUUIDWithoutPassword(ctx context.Context, uuid string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	err := r.db.WithContext(ctx).
		Select("id, uuid, username, email, created_at").
		Where("uuid = ?", uuid).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
