// Package textutil 文本比较辅助
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold 将文本规整为 NFC 并转小写，用于不区分大小写的比较。
// 组合字符与预组合字符（如 "í" 与 "í"）折叠后相同。
func Fold(s string) string {
	// cases.Caser 非并发安全，每次调用新建
	return cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(s)))
}

// EqualFold 两段文本折叠后是否相等
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsFold 折叠后 s 是否包含 substr
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
