package http

import (
	nethttp "net/http"

	"HealthPredict/internal/modules/assessment/application/dto/request"
	"HealthPredict/internal/modules/assessment/application/service"
	"HealthPredict/pkg/back"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/xerr"
	"HealthPredict/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssessmentHandler 疾病评估 JSON 接口
type AssessmentHandler struct {
	svc service.AssessmentService
}

func NewAssessmentHandler(svc service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// ListDiseases GET /api/diseases
func (h *AssessmentHandler) ListDiseases(c *gin.Context) {
	back.Success(c, h.svc.Diseases())
}

// GetDisease GET /api/diseases/:disease 返回表单定义
func (h *AssessmentHandler) GetDisease(c *gin.Context) {
	d, err := h.svc.Disease(c.Param("disease"))
	back.Result(c, d, err)
}

// Predict POST /api/predict/:disease
func (h *AssessmentHandler) Predict(c *gin.Context) {
	var req request.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("predict bind json failed", zap.Error(err))
		back.Error(c, xerr.BadRequest, "Invalid input data: "+err.Error())
		return
	}

	resp, err := h.svc.Assess(c.Request.Context(), c.GetString(constants.ContextUserUUID), c.Param("disease"), req.Values())
	back.Result(c, resp, err)
}

// History GET /api/assessments?limit=20
func (h *AssessmentHandler) History(c *gin.Context) {
	var req request.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	resp, err := h.svc.History(c.Request.Context(), c.GetString(constants.ContextUserUUID), req.Limit)
	back.Result(c, resp, err)
}

// AnalyzeReport POST /api/analyze-pdf，multipart 字段 file
func (h *AssessmentHandler) AnalyzeReport(c *gin.Context) {
	c.Request.Body = nethttp.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		zlog.Warn("analyze report missing file", zap.Error(err))
		back.Error(c, xerr.BadRequest, "Please select a file to upload")
		return
	}

	f, err := fh.Open()
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	defer f.Close()

	resp, err := h.svc.AnalyzeReport(c.Request.Context(), fh.Filename, f)
	back.Result(c, resp, err)
}
