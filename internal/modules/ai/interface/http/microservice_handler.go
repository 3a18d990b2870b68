package http

import (
	"HealthPredict/internal/modules/ai/application/dto/request"
	"HealthPredict/internal/modules/ai/application/service"
	"HealthPredict/pkg/back"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/xerr"
	"HealthPredict/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MicroserviceHandler AI 摘要 / 问答接口
type MicroserviceHandler struct {
	svc service.AIMicroserviceService
}

func NewMicroserviceHandler(svc service.AIMicroserviceService) *MicroserviceHandler {
	return &MicroserviceHandler{svc: svc}
}

// Summary 评估结果解读
//
//	POST /api/ai-summary
//	{"disease":"diabetes","parameters":{...},"prediction":1,"probability":0.82}
//
// 成功时 data 为 {"summary": "..."}
func (h *MicroserviceHandler) Summary(c *gin.Context) {
	var req request.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("summary bind json failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	userUuid := c.GetString(constants.ContextUserUUID)
	resp, err := h.svc.Summary(c.Request.Context(), req, userUuid)
	if err != nil {
		zlog.Warn("summary service failed",
			zap.Error(err),
			zap.String("user_uuid", userUuid),
			zap.String("disease", req.Disease))
	}
	back.Result(c, resp, err)
}

// Assistant 健康问答
//
//	POST /api/ai-assistant
//	{"message":"..."}
func (h *MicroserviceHandler) Assistant(c *gin.Context) {
	var req request.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("assistant bind json failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	userUuid := c.GetString(constants.ContextUserUUID)
	resp, err := h.svc.Assistant(c.Request.Context(), req, userUuid)
	if err != nil {
		zlog.Warn("assistant service failed", zap.Error(err), zap.String("user_uuid", userUuid))
	}
	back.Result(c, resp, err)
}
