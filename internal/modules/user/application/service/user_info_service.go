package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"HealthPredict/internal/modules/user/application/dto/request"
	"HealthPredict/internal/modules/user/application/dto/respond"
	"HealthPredict/internal/modules/user/domain/entity"
	"HealthPredict/internal/modules/user/domain/repository"
	"HealthPredict/pkg/util"
	"HealthPredict/pkg/util/myjwt"
	"HealthPredict/pkg/xerr"
	"HealthPredict/pkg/zlog"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MsgUserCreated   = "User created successfully"
	minPasswordLen   = 6
	maxUsernameRunes = 50
)

var (
	ErrEmailRegistered = xerr.New(xerr.BadRequest, "Email already registered")
	ErrUsernameTaken   = xerr.New(xerr.BadRequest, "Username already taken")
	ErrBadCredentials  = xerr.New(xerr.Unauthorized, "Incorrect email or password")
	ErrUserNotFound    = xerr.New(xerr.NotFound, "User not found")
)

var validate = validator.New()

// UserInfoService 注册、登录、个人信息
type UserInfoService interface {
	Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error)
	Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error)
	GetUserInfo(ctx context.Context, uuid string) (*respond.UserInfoRespond, error)
}

type userInfoServiceImpl struct {
	repo repository.UserInfoRepository
}

func NewUserInfoService(repo repository.UserInfoRepository) UserInfoService {
	return &userInfoServiceImpl{repo: repo}
}

func (u *userInfoServiceImpl) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" {
		return nil, xerr.New(xerr.BadRequest, "Username is required")
	}
	if len([]rune(username)) > maxUsernameRunes {
		return nil, xerr.New(xerr.BadRequest, "Username is too long")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, xerr.New(xerr.BadRequest, "Please enter a valid email address")
	}
	if len(req.Password) < minPasswordLen {
		return nil, xerr.New(xerr.BadRequest, "Password must be at least 6 characters")
	}

	// 1. 邮箱先于用户名检查
	if _, err := u.repo.GetUserInfoByEmail(ctx, email); err == nil {
		return nil, ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error("get user by email failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}
	if _, err := u.repo.GetUserInfoByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error("get user by username failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}

	// 2. bcrypt
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zlog.Error("hash password failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}

	newUser := entity.UserInfo{
		Uuid:      util.NewID("U"),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := u.repo.CreateUserInfo(ctx, &newUser); err != nil {
		zlog.Error("create user failed", zap.Error(err), zap.String("username", username))
		return nil, xerr.ErrServerError
	}

	zlog.Info("user registered", zap.String("uuid", newUser.Uuid))
	return &respond.RegisterRespond{
		Uuid:     newUser.Uuid,
		Username: newUser.Username,
		Email:    newUser.Email,
	}, nil
}

func (u *userInfoServiceImpl) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrBadCredentials
	}

	user, err := u.repo.GetUserInfoByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		zlog.Error("get user by email failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrBadCredentials
	}

	token, err := myjwt.GenerateToken(user.Uuid, user.Username, user.Email)
	if err != nil {
		zlog.Error("generate token failed", zap.Error(err), zap.String("uuid", user.Uuid))
		return nil, xerr.ErrServerError
	}

	return &respond.LoginRespond{
		Id:       user.Id,
		Uuid:     user.Uuid,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (u *userInfoServiceImpl) GetUserInfo(ctx context.Context, uuid string) (*respond.UserInfoRespond, error) {
	if uuid == "" {
		return nil, xerr.ErrUnauthorized
	}
	user, err := u.repo.GetUserInfoByUUIDWithoutPassword(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		zlog.Error("get user by uuid failed", zap.Error(err))
		return nil, xerr.ErrServerError
	}
	return &respond.UserInfoRespond{
		Uuid:      user.Uuid,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format("2006-01-02"),
	}, nil
}
