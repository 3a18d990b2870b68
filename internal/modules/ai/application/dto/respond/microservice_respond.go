package respond

type SummaryRespond struct {
	Summary  string `json:"summary"`
	CacheHit bool   `json:"cache_hit"`
}

type AssistantRespond struct {
	Message string `json:"message"`
}
