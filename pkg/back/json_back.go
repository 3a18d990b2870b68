package back

import (
	"HealthPredict/pkg/xerr"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Result 统一返回入口
func Result(c *gin.Context, data interface{}, err error) {
	if err == nil {
		Success(c, data)
		return
	}

	// 判断是否为自定义错误
	if e, ok := xerr.As(err); ok {
		Error(c, e.Code, e.Message)
		return
	}

	// 默认为系统错误
	Error(c, xerr.ErrServerError.Code, xerr.ErrServerError.Message)
}

// Success 成功返回
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    xerr.OK,
		Message: "Success",
		Data:    data,
	})
}

// Created 创建成功返回（201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    xerr.Created,
		Message: message,
		Data:    data,
	})
}

// Error 错误返回，4xx/5xx 业务码同时作为 HTTP 状态码
func Error(c *gin.Context, code int, message string) {
	c.JSON(statusOf(code), Response{
		Code:    code,
		Message: message,
	})
}

func statusOf(code int) int {
	if code >= 400 && code <= 599 {
		return code
	}
	return http.StatusOK
}
