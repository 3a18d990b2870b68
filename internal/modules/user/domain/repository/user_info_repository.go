package repository

import (
	"context"

	"HealthPredict/internal/modules/user/domain/entity"
)

// UserInfoRepository 查不到时返回 gorm.ErrRecordNotFound
type UserInfoRepository interface {
	CreateUserInfo(ctx context.Context, user *entity.UserInfo) error
	GetUserInfoByEmail(ctx context.Context, email string) (*entity.UserInfo, error)
	GetUserInfoByUsername(ctx context.Context, username string) (*entity.UserInfo, error)
	GetUserInfoByUUIDWithoutPassword(ctx context.Context, uuid string) (*entity.UserInfo, error)
}
