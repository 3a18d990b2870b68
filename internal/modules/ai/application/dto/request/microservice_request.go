package request

// SummaryRequest POST /api/ai-summary
type SummaryRequest struct {
	Disease     string             `json:"disease"`
	Parameters  map[string]float64 `json:"parameters"`
	Prediction  int                `json:"prediction"`
	Probability *float64           `json:"probability"`
}

// AssistantRequest POST /api/ai-assistant
type AssistantRequest struct {
	Message string `json:"message"`
}
