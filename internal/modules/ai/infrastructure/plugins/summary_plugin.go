package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"HealthPredict/internal/modules/ai/infrastructure/llm"
	"HealthPredict/internal/modules/assessment/domain/disease"
	"HealthPredict/pkg/constants"
	"HealthPredict/pkg/util"
)

const defaultProbability = 0.5

// SummaryPlugin 评估结果的 AI 解读
type SummaryPlugin struct {
	config *SummaryConfig
}

type SummaryConfig struct {
	CacheTTL int // 秒，默认 constants.SummaryCacheTTLSeconds
}

func NewSummaryPlugin(config *SummaryConfig) *SummaryPlugin {
	if config == nil {
		config = &SummaryConfig{}
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = constants.SummaryCacheTTLSeconds
	}
	return &SummaryPlugin{config: config}
}

func (p *SummaryPlugin) GetServiceType() string {
	return ServiceTypeSummary
}

func (p *SummaryPlugin) GenerateOptions() llm.GenerateRequest {
	return llm.GenerateRequest{Temperature: 0.7, TopK: 60, TopP: 0.95, MaxOutputTokens: 400}
}

func (p *SummaryPlugin) Validate(ctx context.Context, req *PluginRequest) error {
	if strings.TrimSpace(req.Disease) == "" {
		return fmt.Errorf("disease is required")
	}
	if req.Prediction != 0 && req.Prediction != 1 {
		return fmt.Errorf("prediction must be 0 or 1")
	}
	if req.Probability != nil && (*req.Probability < 0 || *req.Probability > 1) {
		return fmt.Errorf("probability must be between 0 and 1")
	}
	return nil
}

// BuildPrompt 糖尿病带患者画像，其余疾病走默认模板；末尾统一附参数清单
func (p *SummaryPlugin) BuildPrompt(ctx context.Context, req *PluginRequest) (string, error) {
	prob := defaultProbability
	if req.Probability != nil {
		prob = *req.Probability
	}
	confidence := disease.FormatPercent(prob)
	verb := yesNoPhrase[0]
	if req.Prediction == 1 {
		verb = yesNoPhrase[1]
	}

	d, known := disease.Lookup(req.Disease)
	name := req.Disease
	if known {
		name = strings.ToLower(d.Name)
	}

	var b strings.Builder
	if known && d.Slug == "diabetes" {
		params := req.Parameters
		fmt.Fprintf(&b, diabetesSummaryPrompt,
			verb, name, confidence,
			genderOf(params),
			phrase(yesNoPhrase, params, "hypertension"),
			phrase(yesNoPhrase, params, "heart_disease"),
			phrase(smokingPhrase, params, "smoking_history"),
			name, name)
	} else {
		fmt.Fprintf(&b, defaultSummaryPrompt, verb, name, confidence)
	}

	lines := parameterLines(d, known, req.Parameters)
	if len(lines) > 0 {
		b.WriteString("\nAssessment parameters:\n")
		for _, l := range lines {
			b.WriteString("- ")
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func (p *SummaryPlugin) ParseResponse(ctx context.Context, llmOutput string, req *PluginRequest) (*PluginResponse, error) {
	out := strings.TrimSpace(llmOutput)
	if out == "" {
		return &PluginResponse{Output: summaryFallback, Fallback: true}, nil
	}
	return &PluginResponse{Output: out}, nil
}

// GetCacheKey 相同疾病、参数、结果复用同一份摘要
func (p *SummaryPlugin) GetCacheKey(ctx context.Context, req *PluginRequest) string {
	raw, err := json.Marshal(struct {
		Disease     string             `json:"d"`
		Parameters  map[string]float64 `json:"p"`
		Prediction  int                `json:"r"`
		Probability *float64           `json:"c"`
	}{req.Disease, req.Parameters, req.Prediction, req.Probability})
	if err != nil {
		return ""
	}
	return "ai:micro:summary:" + util.MD5Hex(string(raw))
}

func (p *SummaryPlugin) GetCacheTTL() int {
	return p.config.CacheTTL
}

// genderOf 0 为 male，其余编码一律按 female
func genderOf(params map[string]float64) string {
	if params["gender"] != 0 {
		return genderPhrase[1]
	}
	return genderPhrase[0]
}

// phrase 编码缺失或越界时取 0 对应的描述
func phrase(table map[int]string, params map[string]float64, key string) string {
	if v, ok := params[key]; ok {
		if s, ok := table[int(v)]; ok {
			return s
		}
	}
	return table[0]
}

func parameterLines(d *disease.Disease, known bool, params map[string]float64) []string {
	if len(params) == 0 {
		return nil
	}
	if known {
		details := d.Describe(params)
		out := make([]string, 0, len(details))
		for _, dt := range details {
			out = append(out, dt.Label+": "+dt.Value)
		}
		return out
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+": "+disease.FormatNumber(params[k]))
	}
	return out
}
