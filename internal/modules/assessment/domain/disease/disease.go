package disease

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Disease 一个评估页面的完整定义
type Disease struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	PageTitle   string  `json:"page_title"`
	CardTitle   string  `json:"card_title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Fields      []Field `json:"fields"`
}

// Field 按 payload key 查找字段
func (d *Disease) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// VisibleFields 需要渲染到表单上的字段
func (d *Disease) VisibleFields() []Field {
	out := make([]Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		if !f.Hidden {
			out = append(out, f)
		}
	}
	return out
}

// Defaults 表单初始值
func (d *Disease) Defaults() map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Name] = f.Default
	}
	return out
}

// Validate 按表单顺序校验，返回第一个失败字段的错误
func (d *Disease) Validate(values map[string]string) (Payload, error) {
	payload := make(Payload, 0, len(d.Fields))
	for _, f := range d.Fields {
		raw, ok := values[f.Name]
		if f.Hidden || (!ok && f.Default != "" && f.HasOptions()) {
			raw = f.Default
		}
		v, err := f.Parse(raw)
		if err != nil {
			return nil, err
		}
		payload = append(payload, Param{Name: f.Name, Value: v, Integer: f.Kind == Integer})
	}
	return payload, nil
}

// RiskLabel 预测结果的默认展示文案
func (d *Disease) RiskLabel(prediction int) string {
	if prediction == 1 {
		return "High Risk of " + d.Name
	}
	return "Low Risk of " + d.Name
}

// Detail 结果页 / Prompt 中的一行参数描述
type Detail struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Describe 把参数映射为可读描述，忽略目录之外的 key 和隐藏字段
func (d *Disease) Describe(params map[string]float64) []Detail {
	out := make([]Detail, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Hidden {
			continue
		}
		v, ok := params[f.Name]
		if !ok {
			continue
		}
		out = append(out, Detail{Name: f.Name, Label: f.Label, Value: f.Display(v)})
	}
	return out
}

// Param payload 中的一个参数
type Param struct {
	Name    string
	Value   float64
	Integer bool
}

// Payload 保持字段顺序的预测请求体
type Payload []Param

// MarshalJSON 按字段顺序输出 JSON 对象，整数字段输出为 JSON 整数
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if kv.Integer {
			buf.WriteString(strconv.FormatInt(int64(kv.Value), 10))
		} else {
			buf.WriteString(strconv.FormatFloat(kv.Value, 'f', -1, 64))
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map 转为 name -> value
func (p Payload) Map() map[string]float64 {
	out := make(map[string]float64, len(p))
	for _, kv := range p {
		out[kv.Name] = kv.Value
	}
	return out
}

// Get 读取参数值
func (p Payload) Get(name string) (float64, bool) {
	for _, kv := range p {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return 0, false
}
