package constants

const (
	// AppName 应用名称，页面标题与 JWT issuer 的默认值
	AppName = "HealthPredict"

	// AuthCookieName 页面登录态 Cookie
	AuthCookieName = "hp_token"

	// gin.Context 中的用户信息 key
	ContextUserUUID = "uuid"
	ContextUsername = "username"
	ContextEmail    = "email"

	// AssessmentTopic 评估完成事件主题
	AssessmentTopic = "healthpredict.assessment.completed"

	// SummaryCacheTTLSeconds AI 摘要缓存时间
	SummaryCacheTTLSeconds = 1800

	// MaxUploadBytes 报告上传大小上限
	MaxUploadBytes = 10 << 20

	// MaxBodyBytes 普通请求体大小上限
	MaxBodyBytes = 1 << 20
)
