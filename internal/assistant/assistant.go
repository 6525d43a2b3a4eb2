// Package assistant 基于规则表的“智能助手”应答：常见问题、资源建议、
// 家长消息、文档审核与月度报告。全部为确定性字符串匹配，不做推理。
package assistant

import (
	"strings"

	"github.com/twistin/xestion-conservatorio-rsp/pkg/textutil"
)

// Assistant 规则应答器，创建后只读，可并发使用
type Assistant struct {
	rules *Rules
}

// New 创建 Assistant；rules 必须已通过 Validate
func New(rules *Rules) *Assistant {
	return &Assistant{rules: rules}
}

// Rules 返回当前规则表
func (a *Assistant) Rules() *Rules {
	return a.rules
}

// ── 常见问题 ──

// AnswerFAQ 第一个被问题包含的触发短语决定回答，无命中返回兜底回答
func (a *Assistant) AnswerFAQ(question string) string {
	q := textutil.Fold(question)
	for _, e := range a.rules.FAQ.Entries {
		if strings.Contains(q, textutil.Fold(e.Trigger)) {
			return e.Answer
		}
	}
	return a.rules.FAQ.Fallback
}

// ── 资源建议 ──

// SuggestionInput 资源建议的输入字段
type SuggestionInput struct {
	Level      string
	Instrument string
	Topic      string
}

func (in SuggestionInput) field(name string) string {
	switch name {
	case FieldLevel:
		return in.Level
	case FieldInstrument:
		return in.Instrument
	case FieldTopic:
		return in.Topic
	}
	return ""
}

// SuggestResources 按规则顺序累加所有命中的建议；一条都没有时返回兜底建议
func (a *Assistant) SuggestResources(in SuggestionInput) []string {
	var out []string
	for _, rule := range a.rules.Suggestions.Rules {
		value := textutil.Fold(in.field(rule.Field))
		if value == "" {
			continue
		}
		if containsAny(value, rule.Keywords) {
			out = append(out, rule.Suggestion)
		}
	}
	if len(out) == 0 {
		return []string{a.rules.Suggestions.Fallback}
	}
	return out
}

// ── 家长消息 ──

// FamilyMessage 按原因匹配关键词组生成消息，未命中时使用包含原因原文的通用模板
func (a *Assistant) FamilyMessage(reason, student string) string {
	r := textutil.Fold(reason)
	template := a.rules.FamilyMessages.Fallback
	for _, rule := range a.rules.FamilyMessages.Rules {
		if containsAny(r, rule.Keywords) {
			template = rule.Template
			break
		}
	}
	return strings.NewReplacer("{alumno}", student, "{motivo}", reason).Replace(template)
}

func containsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if k := textutil.Fold(kw); k != "" && strings.Contains(folded, k) {
			return true
		}
	}
	return false
}
