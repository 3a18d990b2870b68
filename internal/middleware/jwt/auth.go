package jwt

import (
	"strings"

	"HealthPredict/pkg/back"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/util/myjwt"
	"HealthPredict/pkg/xerr"

	"github.com/gin-gonic/gin"
)

// Auth 接口鉴权，未登录直接 401
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parse(c)
		if !ok {
			back.Error(c, xerr.Unauthorized, xerr.ErrUnauthorized.Message)
			c.Abort()
			return
		}
		annotate(c, claims)
		c.Next()
	}
}

// Optional 页面使用：有合法 token 时写入用户信息，否则按匿名放行
func Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parse(c); ok {
			annotate(c, claims)
		}
		c.Next()
	}
}

// TokenFrom Authorization: Bearer 优先，其次是登录 Cookie
func TokenFrom(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if v, err := c.Cookie(constants.AuthCookieName); err == nil {
		return v
	}
	return ""
}

func parse(c *gin.Context) (*myjwt.CustomClaims, bool) {
	tokenString := TokenFrom(c)
	if tokenString == "" {
		return nil, false
	}
	claims, err := myjwt.ParseToken(tokenString)
	if err != nil || claims.Uuid == "" {
		return nil, false
	}
	return claims, true
}

func annotate(c *gin.Context, claims *myjwt.CustomClaims) {
	c.Set(constants.ContextUserUUID, claims.Uuid)
	c.Set(constants.ContextUsername, claims.Username)
	c.Set(constants.ContextEmail, claims.Email)
}
