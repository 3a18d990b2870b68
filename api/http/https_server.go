package http

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"HealthPredict/internal/config"
	jwtMiddleware "HealthPredict/internal/middleware/jwt"
	"HealthPredict/internal/middleware/logger"
	aiService "HealthPredict/internal/modules/ai/application/service"
	aiHandler "HealthPredict/internal/modules/ai/interface/http"
	assessmentService "HealthPredict/internal/modules/assessment/application/service"
	assessmentHandler "HealthPredict/internal/modules/assessment/interface/http"
	userService "HealthPredict/internal/modules/user/application/service"
	userHandler "HealthPredict/internal/modules/user/interface/http"
	"HealthPredict/internal/web"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/metrics"
	"HealthPredict/pkg/ssl"
	"HealthPredict/pkg/util/myjwt"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HealthCheck 就绪检查项，返回 error 表示依赖不可用
type HealthCheck func(ctx context.Context) error

// Deps 路由需要的应用服务
type Deps struct {
	Config      *config.Config
	Users       userService.UserInfoService
	Assessments assessmentService.AssessmentService
	AI          aiService.AIMicroserviceService
	Checks      map[string]HealthCheck
}

// NewEngine 组装中间件与全部路由
func NewEngine(deps Deps) (*gin.Engine, error) {
	conf := deps.Config

	ge := gin.New()
	ge.Use(logger.Recovery(), logger.ZapLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = conf.MainConfig.AllowOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"*"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	ge.Use(cors.New(corsConfig))
	ge.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port, conf.MainConfig.EnableTLS))
	ge.Use(bodyLimit(), metrics.Middleware())

	tmpl, err := web.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	ge.SetHTMLTemplate(tmpl)
	ge.StaticFS("/static", web.StaticFS())

	userH := userHandler.NewUserInfoHandler(deps.Users)
	assessmentH := assessmentHandler.NewAssessmentHandler(deps.Assessments)
	aiH := aiHandler.NewMicroserviceHandler(deps.AI)

	ge.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ge.GET("/readyz", readiness(deps.Checks))
	ge.GET("/metrics", metrics.Handler())

	api := ge.Group("/api")
	api.POST("/signup", userH.Register)
	api.POST("/login", userH.Login)
	api.GET("/diseases", assessmentH.ListDiseases)
	api.GET("/diseases/:disease", assessmentH.GetDisease)

	authed := api.Group("/")
	authed.Use(jwtMiddleware.Auth())
	authed.GET("/auth/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uuid":     c.GetString(constants.ContextUserUUID),
			"username": c.GetString(constants.ContextUsername),
		})
	})
	authed.GET("/me", userH.Me)
	authed.POST("/predict/:disease", assessmentH.Predict)
	authed.POST("/analyze-pdf", assessmentH.AnalyzeReport)
	authed.GET("/assessments", assessmentH.History)
	authed.POST("/ai-summary", aiH.Summary)
	authed.POST("/ai-assistant", aiH.Assistant)

	pages := web.NewPages(deps.Users, deps.Assessments, deps.AI, myjwt.TTL(), conf.JwtConfig.CookieSecure)
	site := ge.Group("/")
	site.Use(jwtMiddleware.Optional())
	pages.Register(site)

	return ge, nil
}

// bodyLimit 上传接口放宽到 MaxUploadBytes
func bodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			limit := int64(constants.MaxBodyBytes)
			if strings.HasPrefix(c.ContentType(), "multipart/") {
				limit = constants.MaxUploadBytes
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

func readiness(checks map[string]HealthCheck) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		var failing []string
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				failing = append(failing, name)
			}
		}
		if len(failing) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failing": failing})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
