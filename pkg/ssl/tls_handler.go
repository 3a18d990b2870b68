package ssl

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// TlsHandler 安全响应头；enableTLS 时同时把 http 请求重定向到 https
func TlsHandler(host string, port int, enableTLS bool) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:        enableTLS,
		SSLHost:            host + ":" + strconv.Itoa(port),
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "same-origin",
	})

	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)

		// Process 已经写入了重定向响应，不再继续
		if err != nil {
			c.Abort()
			return
		}

		// 重定向时 Process 返回 nil 但状态码已写入
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
			return
		}

		c.Next()
	}
}
