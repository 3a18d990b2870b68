package web

import (
	"net/http"
	"strings"

	userRequest "HealthPredict/internal/modules/user/application/dto/request"

	"github.com/gin-gonic/gin"
)

func (p *Pages) Login(c *gin.Context) {
	next, ok := validateRedirectURL(c.Query("next"))
	if c.Request.Method == http.MethodPost {
		next, ok = validateRedirectURL(c.PostForm("next"))
	}
	if !ok {
		next = "/"
	}

	page := authPage{basePage: p.base(c, "Login", true), Next: next}
	if c.Query("registered") == "1" {
		page.Notice = "User created successfully. Please log in."
	}

	if c.Request.Method == http.MethodPost {
		req := userRequest.LoginRequest{
			Email:    strings.TrimSpace(c.PostForm("email")),
			Password: c.PostForm("password"),
		}
		page.Email = req.Email

		resp, err := p.users.Login(c.Request.Context(), req)
		if err == nil {
			setAuthCookie(c, resp.Token, p.tokenTTL, p.cookieSecure)
			c.Redirect(http.StatusSeeOther, next)
			return
		}
		page.Error = messageOf(err)
	}

	c.HTML(http.StatusOK, "login.html", page)
}

func (p *Pages) Signup(c *gin.Context) {
	page := authPage{basePage: p.base(c, "Register", true)}

	if c.Request.Method == http.MethodPost {
		req := userRequest.RegisterRequest{
			Username: strings.TrimSpace(c.PostForm("username")),
			Email:    strings.TrimSpace(c.PostForm("email")),
			Password: c.PostForm("password"),
		}
		page.Username, page.Email = req.Username, req.Email

		if req.Password != c.PostForm("confirm_password") {
			page.Error = "Passwords do not match"
			c.HTML(http.StatusOK, "signup.html", page)
			return
		}

		if _, err := p.users.Register(c.Request.Context(), req); err != nil {
			page.Error = messageOf(err)
			c.HTML(http.StatusOK, "signup.html", page)
			return
		}
		c.Redirect(http.StatusSeeOther, "/login?registered=1")
		return
	}

	c.HTML(http.StatusOK, "signup.html", page)
}

func (p *Pages) Logout(c *gin.Context) {
	clearAuthCookie(c, p.cookieSecure)
	c.Redirect(http.StatusSeeOther, "/")
}
