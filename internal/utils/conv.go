package utils

import (
	"strconv"
	"strings"
)

// StringToInt 宽松的字符串转 int，解析失败返回 0。
// 用于分页等 query 参数，调用方自行处理 0 的兜底值。
func StringToInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}
