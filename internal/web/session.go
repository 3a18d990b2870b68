package web

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"HealthPredict/pkg/constants"

	"github.com/gin-gonic/gin"
)

// currentUser 由 jwt.Optional 中间件写入的用户信息
func currentUser(c *gin.Context) *sessionUser {
	uuid := c.GetString(constants.ContextUserUUID)
	if uuid == "" {
		return nil
	}
	return &sessionUser{
		Uuid:     uuid,
		Username: c.GetString(constants.ContextUsername),
		Email:    c.GetString(constants.ContextEmail),
	}
}

// setAuthCookie HttpOnly 登录 Cookie
func setAuthCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AuthCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// clearAuthCookie 过期的同名 Cookie
func clearAuthCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AuthCookieName, "", -1, "/", "", secure, true)
}

// validateRedirectURL 只允许站内相对路径，拒绝 //host 形式
func validateRedirectURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", false
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, `\`) {
		return "", false
	}
	// 回写转义后的路径，避免空格等字符在 Location 中被解码
	path := u.EscapedPath()
	if u.RawQuery != "" {
		return path + "?" + u.RawQuery, true
	}
	return path, true
}

func loginURL(next string) string {
	if next == "" || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}
