package disease

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind 字段数值类型
type Kind int

const (
	// Number 浮点字段
	Number Kind = iota
	// Integer 整数字段，范围按原值校验，写入 payload 时向零截断
	Integer
)

// Option 下拉/单选选项
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Field 表单字段定义
//
// Name 即预测服务 payload 的 key；Hidden 字段不渲染，只以 Default 写入 payload
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Unit    string   `json:"unit,omitempty"`
	Kind    Kind     `json:"kind"`
	Default string   `json:"default,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    string   `json:"step,omitempty"`
	Options []Option `json:"options,omitempty"`
	Message string   `json:"message,omitempty"`
	Hidden  bool     `json:"hidden,omitempty"`
}

// HasOptions 是否以选择控件渲染
func (f Field) HasOptions() bool {
	return len(f.Options) > 0
}

// Radio 两个选项的字段以单选渲染，其余用下拉
func (f Field) Radio() bool {
	return len(f.Options) > 0 && len(f.Options) <= 2
}

// ErrorMessage 校验失败时展示给用户的文案
func (f Field) ErrorMessage() string {
	if f.Message != "" {
		return f.Message
	}
	if f.HasOptions() {
		return fmt.Sprintf("Please select a valid %s", f.Label)
	}
	if f.Min != nil && f.Max != nil {
		return fmt.Sprintf("Please enter a valid %s between %s and %s", f.Label, FormatNumber(*f.Min), FormatNumber(*f.Max))
	}
	return fmt.Sprintf("Please enter a valid %s value", f.Label)
}

// OptionLabel 选项值对应的显示文案
func (f Field) OptionLabel(v int) (string, bool) {
	for _, o := range f.Options {
		if o.Value == v {
			return o.Label, true
		}
	}
	return "", false
}

// Parse 解析并校验单个字段
func (f Field) Parse(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: f.Name, Message: f.ErrorMessage()}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: f.Name, Message: f.ErrorMessage()}
	}
	if f.HasOptions() {
		if f.Kind == Integer {
			v = math.Trunc(v)
		}
		if v != math.Trunc(v) {
			return 0, &ValidationError{Field: f.Name, Message: f.ErrorMessage()}
		}
		if _, ok := f.OptionLabel(int(v)); !ok {
			return 0, &ValidationError{Field: f.Name, Message: f.ErrorMessage()}
		}
		return v, nil
	}

	if f.Min != nil && v < *f.Min {
		return 0, &ValidationError{Field: f.Name, Message: f.ErrorMessage()}
	}
	if f.Max != nil && v > *f.Max {
		return 0, &ValidationError{Field: f.Name, Message: f.ErrorMessage()}
	}
	// 先按原值校验范围，再截断
	if f.Kind == Integer {
		v = math.Trunc(v)
	}
	return v, nil
}

// Display 字段值的可读形式：选项取 label，数值附带单位
func (f Field) Display(v float64) string {
	if f.HasOptions() {
		if label, ok := f.OptionLabel(int(v)); ok {
			return label
		}
	}
	s := FormatNumber(v)
	if f.Kind == Integer {
		s = strconv.FormatInt(int64(v), 10)
	}
	if f.Unit != "" {
		s += " " + f.Unit
	}
	return s
}

// ValidationError 表单校验错误（只报告第一个失败字段）
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormatNumber 去掉多余小数位
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent 概率转百分比，保留两位小数（0.8734 -> "87.34"）
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 2, 64)
}
