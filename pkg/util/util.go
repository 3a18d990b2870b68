package util

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID 生成 20 位业务 ID：前缀 + 去掉中划线的 UUID 截断
// 例如 U3f2a9c...，与表结构 char(20) 对齐
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	n := 20 - len(prefix)
	if n < 0 {
		n = 0
	}
	return prefix + raw[:n]
}

// MD5Hex 计算字符串的 md5 十六进制摘要（缓存 key 使用）
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
