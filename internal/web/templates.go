package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"HealthPredict/internal/modules/assessment/domain/disease"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcMap = template.FuncMap{
	"itoa": strconv.Itoa,
	"bound": func(v *float64) string {
		if v == nil {
			return ""
		}
		return disease.FormatNumber(*v)
	},
	"percent": disease.FormatPercent,
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
	"lower": strings.ToLower,
}

// LoadTemplates 解析全部页面模板
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

// StaticFS /static 下的样式文件
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// sessionUser 当前登录用户（来自 JWT）
type sessionUser struct {
	Uuid     string
	Username string
	Email    string
}

// basePage 所有页面共享的布局数据
type basePage struct {
	Title    string
	User     *sessionUser
	Year     int
	ShowBack bool
}

type card struct {
	Title       string
	Description string
	Content     string
	Href        string
}

type homePage struct {
	basePage
	Cards []card
}

type authPage struct {
	basePage
	Error    string
	Notice   string
	Username string
	Email    string
	Next     string
}

type fieldView struct {
	disease.Field
	Value string
}

type diseasePage struct {
	basePage
	Disease      *disease.Disease
	Fields       []fieldView
	Error        string
	NeedLogin    bool
	ActiveTab    string
	Result       *resultView
	SummaryError string
}

type resultView struct {
	Prediction int
	Banner     string
	Confidence string
	Summary    string
	Details    []disease.Detail
}

type assistantPage struct {
	basePage
	Question string
	Answer   string
	Error    string
}

type uploadPage struct {
	basePage
	Filename  string
	Analysis  string
	Error     string
	NeedLogin bool
}

type historyRow struct {
	Title      string
	RiskStatus string
	HighRisk   bool
	Confidence string
	CreatedAt  time.Time
}

type overviewRow struct {
	Title    string
	Total    int64
	HighRisk int64
}

type profilePage struct {
	basePage
	Username string
	Email    string
	Since    string
	Overview []overviewRow
	History  []historyRow
	Error    string
}
