package web

import (
	"context"
	"io"
	"net/http"
	"time"

	aiRequest "HealthPredict/internal/modules/ai/application/dto/request"
	aiRespond "HealthPredict/internal/modules/ai/application/dto/respond"
	assessRespond "HealthPredict/internal/modules/assessment/application/dto/respond"
	"HealthPredict/internal/modules/assessment/domain/disease"
	userRequest "HealthPredict/internal/modules/user/application/dto/request"
	userRespond "HealthPredict/internal/modules/user/application/dto/respond"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/xerr"
	"HealthPredict/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgSummaryUnavailable = "Unable to generate summary. Please try again later."
	msgGenericError       = "An error occurred while processing your request"
)

// 页面依赖的应用服务，与各模块 service 接口的子集一致
type (
	UserService interface {
		Register(ctx context.Context, req userRequest.RegisterRequest) (*userRespond.RegisterRespond, error)
		Login(ctx context.Context, req userRequest.LoginRequest) (*userRespond.LoginRespond, error)
		GetUserInfo(ctx context.Context, uuid string) (*userRespond.UserInfoRespond, error)
	}

	AssessmentService interface {
		Assess(ctx context.Context, userUuid, slug string, values map[string]string) (*assessRespond.AssessRespond, error)
		History(ctx context.Context, userUuid string, limit int) (*assessRespond.HistoryRespond, error)
		AnalyzeReport(ctx context.Context, filename string, r io.Reader) (*assessRespond.AnalyzeReportRespond, error)
	}

	AIService interface {
		Summary(ctx context.Context, req aiRequest.SummaryRequest, userUuid string) (*aiRespond.SummaryRespond, error)
		Assistant(ctx context.Context, req aiRequest.AssistantRequest, userUuid string) (*aiRespond.AssistantRespond, error)
	}
)

// Pages 服务端渲染页面
type Pages struct {
	users        UserService
	assessments  AssessmentService
	ai           AIService
	tokenTTL     time.Duration
	cookieSecure bool
}

func NewPages(users UserService, assessments AssessmentService, ai AIService, tokenTTL time.Duration, cookieSecure bool) *Pages {
	return &Pages{
		users:        users,
		assessments:  assessments,
		ai:           ai,
		tokenTTL:     tokenTTL,
		cookieSecure: cookieSecure,
	}
}

// Register 挂载页面路由，调用方需先挂 jwt.Optional
func (p *Pages) Register(r gin.IRoutes) {
	r.GET("/", p.Home)
	r.GET("/login", p.Login)
	r.POST("/login", p.Login)
	r.GET("/signup", p.Signup)
	r.POST("/signup", p.Signup)
	r.POST("/logout", p.Logout)
	r.GET("/ai-assistant", p.Assistant)
	r.POST("/ai-assistant", p.Assistant)
	r.GET("/FileUploadPage", p.Upload)
	r.POST("/FileUploadPage", p.Upload)
	r.GET("/profile", p.Profile)

	for _, d := range disease.All() {
		h := p.diseaseHandler(d)
		r.GET("/"+d.Slug, h)
		r.POST("/"+d.Slug, h)
	}
}

func (p *Pages) base(c *gin.Context, title string, showBack bool) basePage {
	return basePage{
		Title:    title,
		User:     currentUser(c),
		Year:     time.Now().Year(),
		ShowBack: showBack,
	}
}

func (p *Pages) Home(c *gin.Context) {
	cards := make([]card, 0, len(disease.All())+2)
	for _, d := range disease.All() {
		cards = append(cards, card{Title: d.CardTitle, Description: d.Description, Content: d.Content, Href: "/" + d.Slug})
	}
	cards = append(cards,
		card{
			Title:       "AI Health Assistant",
			Description: "Chat with our AI-powered health assistant for personalized health advice.",
			Content:     "Powered by Google Gemini, our AI assistant can answer health questions and provide wellness guidance.",
			Href:        "/ai-assistant",
		},
		card{
			Title:       "Upload Report",
			Description: "Chat with our AI-powered health assistant for personalized health advice.",
			Content:     "Powered by Google Gemini, our AI assistant can answer health questions and provide wellness guidance.",
			Href:        "/FileUploadPage",
		},
	)

	c.HTML(http.StatusOK, "home.html", homePage{
		basePage: p.base(c, constants.AppName, false),
		Cards:    cards,
	})
}

func (p *Pages) diseaseHandler(d *disease.Disease) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := diseasePage{
			basePage:  p.base(c, d.PageTitle, true),
			Disease:   d,
			ActiveTab: "form",
		}

		if c.Request.Method != http.MethodPost {
			page.Fields = fieldViews(d, d.Defaults())
			c.HTML(http.StatusOK, "disease.html", page)
			return
		}

		values := make(map[string]string, len(d.Fields))
		for _, f := range d.VisibleFields() {
			values[f.Name] = c.PostForm(f.Name)
		}
		page.Fields = fieldViews(d, values)

		// 先校验表单，再检查登录
		if _, err := d.Validate(values); err != nil {
			page.Error = err.Error()
			c.HTML(http.StatusOK, "disease.html", page)
			return
		}
		user := page.User
		if user == nil {
			page.Error = xerr.ErrUnauthorized.Message
			page.NeedLogin = true
			c.HTML(http.StatusOK, "disease.html", page)
			return
		}

		ctx := c.Request.Context()
		result, err := p.assessments.Assess(ctx, user.Uuid, d.Slug, values)
		if err != nil {
			page.Error = messageOf(err)
			c.HTML(http.StatusOK, "disease.html", page)
			return
		}

		view := &resultView{
			Prediction: result.Prediction,
			Banner:     result.Headline,
			Confidence: result.Confidence(),
			Details:    result.Details,
		}
		if view.Banner == "" {
			view.Banner = d.RiskLabel(result.Prediction)
		}

		summary, err := p.ai.Summary(ctx, aiRequest.SummaryRequest{
			Disease:     d.Slug,
			Parameters:  result.Parameters,
			Prediction:  result.Prediction,
			Probability: result.Probability,
		}, user.Uuid)
		if err != nil {
			zlog.Warn("page summary failed", zap.String("disease", d.Slug), zap.Error(err))
			page.SummaryError = msgSummaryUnavailable
		} else {
			view.Summary = summary.Summary
		}

		page.Result = view
		page.ActiveTab = "results"
		c.HTML(http.StatusOK, "disease.html", page)
	}
}

func fieldViews(d *disease.Disease, values map[string]string) []fieldView {
	visible := d.VisibleFields()
	out := make([]fieldView, 0, len(visible))
	for _, f := range visible {
		out = append(out, fieldView{Field: f, Value: values[f.Name]})
	}
	return out
}

func (p *Pages) Assistant(c *gin.Context) {
	page := assistantPage{basePage: p.base(c, "AI Health Assistant", true)}

	if c.Request.Method == http.MethodPost {
		page.Question = c.PostForm("message")
		var userUuid string
		if page.User != nil {
			userUuid = page.User.Uuid
		}
		resp, err := p.ai.Assistant(c.Request.Context(), aiRequest.AssistantRequest{Message: page.Question}, userUuid)
		if err != nil {
			page.Error = messageOf(err)
		} else {
			page.Answer = resp.Message
		}
	}

	c.HTML(http.StatusOK, "assistant.html", page)
}

func (p *Pages) Upload(c *gin.Context) {
	page := uploadPage{basePage: p.base(c, "Medical Document Analysis", true)}

	if c.Request.Method == http.MethodPost {
		if page.User == nil {
			page.Error = xerr.ErrUnauthorized.Message
			page.NeedLogin = true
			c.HTML(http.StatusOK, "upload.html", page)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxUploadBytes)
		fh, err := c.FormFile("file")
		if err != nil {
			page.Error = "Please select a file to upload"
			c.HTML(http.StatusOK, "upload.html", page)
			return
		}
		page.Filename = fh.Filename

		f, err := fh.Open()
		if err != nil {
			page.Error = msgGenericError
			c.HTML(http.StatusOK, "upload.html", page)
			return
		}
		defer f.Close()

		resp, err := p.assessments.AnalyzeReport(c.Request.Context(), fh.Filename, f)
		if err != nil {
			page.Error = messageOf(err)
		} else {
			page.Analysis = resp.Analysis
		}
	}

	c.HTML(http.StatusOK, "upload.html", page)
}

func (p *Pages) Profile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusSeeOther, loginURL("/profile"))
		return
	}

	page := profilePage{
		basePage: p.base(c, "Profile", true),
		Username: user.Username,
		Email:    user.Email,
	}

	ctx := c.Request.Context()
	if info, err := p.users.GetUserInfo(ctx, user.Uuid); err == nil {
		page.Username, page.Email, page.Since = info.Username, info.Email, info.CreatedAt
	} else {
		zlog.Warn("profile user info failed", zap.String("uuid", user.Uuid), zap.Error(err))
	}

	history, err := p.assessments.History(ctx, user.Uuid, 20)
	if err != nil {
		page.Error = messageOf(err)
		c.HTML(http.StatusOK, "profile.html", page)
		return
	}
	for _, o := range history.Overview {
		page.Overview = append(page.Overview, overviewRow{Title: o.Title, Total: o.Total, HighRisk: o.HighRisk})
	}
	for _, it := range history.Items {
		row := historyRow{Title: it.Title, RiskStatus: it.RiskStatus, HighRisk: it.Prediction == 1, CreatedAt: it.CreatedAt}
		if it.Probability != nil {
			row.Confidence = disease.FormatPercent(*it.Probability)
		}
		page.History = append(page.History, row)
	}

	c.HTML(http.StatusOK, "profile.html", page)
}

func messageOf(err error) string {
	if e, ok := xerr.As(err); ok {
		return e.Message
	}
	return msgGenericError
}
