package handler

import (
	"HealthPredict/internal/modules/user/application/dto/request"
	"HealthPredict/internal/modules/user/application/service"
	"HealthPredict/pkg/back"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/xerr"
	"HealthPredict/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserInfoHandler struct {
	svc service.UserInfoService
}

func NewUserInfoHandler(svc service.UserInfoService) *UserInfoHandler {
	return &UserInfoHandler{svc: svc}
}

// Login POST /api/login
func (h *UserInfoHandler) Login(c *gin.Context) {
	var loginReq request.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		zlog.Warn("login bind json failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Login(c.Request.Context(), loginReq)
	back.Result(c, data, err)
}

// Register POST /api/signup，成功返回 201
func (h *UserInfoHandler) Register(c *gin.Context) {
	var registerReq request.RegisterRequest
	if err := c.ShouldBindJSON(&registerReq); err != nil {
		zlog.Warn("register bind json failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Register(c.Request.Context(), registerReq)
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	back.Created(c, service.MsgUserCreated, data)
}

// Me GET /api/me 当前登录用户
func (h *UserInfoHandler) Me(c *gin.Context) {
	data, err := h.svc.GetUserInfo(c.Request.Context(), c.GetString(constants.ContextUserUUID))
	back.Result(c, data, err)
}
