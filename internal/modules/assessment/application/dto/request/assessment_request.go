package request

import (
	"strconv"
	"strings"
)

// PredictRequest 评估表单，字段名 -> 数值或文本
type PredictRequest map[string]interface{}

// Values 统一转为文本交给疾病目录校验
func (r PredictRequest) Values() map[string]string {
	out := make(map[string]string, len(r))
	for k, v := range r {
		switch val := v.(type) {
		case string:
			out[k] = strings.TrimSpace(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			if val {
				out[k] = "1"
			} else {
				out[k] = "0"
			}
		case nil:
			out[k] = ""
		default:
			// 对象、数组一律视为非法输入
			out[k] = "invalid"
		}
	}
	return out
}

type HistoryRequest struct {
	Limit int `form:"limit"`
}
