package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"HealthPredict/internal/config"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/util/myjwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	c := &config.Config{}
	c.MainConfig.AppName = "HealthPredict"
	c.JwtConfig.Key = "middleware-secret"
	c.JwtConfig.ExpireHours = 1
	config.SetConfig(c)

	token, err := myjwt.GenerateToken("U123", "erin", "erin@example.com")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	whoami := func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextUserUUID))
	}
	r.GET("/private", Auth(), whoami)
	r.GET("/page", Optional(), whoami)
	return r, token
}

func TestAuthAcceptsBearerAndCookie(t *testing.T) {
	r, token := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "U123", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejectsMissingOrBadToken(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "You must be logged in to access this feature")

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalLetsAnonymousThrough(t *testing.T) {
	r, token := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "U123", w.Body.String())
}
