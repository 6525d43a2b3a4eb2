package assistant

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// 规则字段名
const (
	FieldLevel      = "level"
	FieldInstrument = "instrument"
	FieldTopic      = "topic"
)

// Rules 助手的全部规则表，列表顺序即优先级
type Rules struct {
	FAQ            FAQRules      `yaml:"faq"`
	Suggestions    SuggestRules  `yaml:"suggestions"`
	FamilyMessages FamilyRules   `yaml:"family_messages"`
	DocumentReview DocumentRules `yaml:"document_review"`
}

// FAQRules 常见问题：第一个命中的触发短语生效
type FAQRules struct {
	Entries  []FAQEntry `yaml:"entries"`
	Fallback string     `yaml:"fallback"`
}

// FAQEntry 触发短语 → 固定回答
type FAQEntry struct {
	Trigger string `yaml:"trigger"`
	Answer  string `yaml:"answer"`
}

// SuggestRules 资源建议：所有命中的规则累加
type SuggestRules struct {
	Rules    []SuggestRule `yaml:"rules"`
	Fallback string        `yaml:"fallback"`
}

// SuggestRule 针对某个输入字段的关键词规则
type SuggestRule struct {
	Field      string   `yaml:"field"`
	Keywords   []string `yaml:"keywords"`
	Suggestion string   `yaml:"suggestion"`
}

// FamilyRules 家长消息：第一个命中的关键词组生效
type FamilyRules struct {
	Rules    []FamilyRule `yaml:"rules"`
	Fallback string       `yaml:"fallback"`
}

// FamilyRule 关键词组 → 模板，模板支持 {alumno} 与 {motivo}
type FamilyRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Template string   `yaml:"template"`
}

// DocumentRules 文档审核规则
type DocumentRules struct {
	AllowedExtensions []string         `yaml:"allowed_extensions"`
	MaxBytes          int64            `yaml:"max_bytes"`
	SignatureToken    string           `yaml:"signature_token"`
	Messages          DocumentMessages `yaml:"messages"`
}

// DocumentMessages 各审核结果的提示语
type DocumentMessages struct {
	RejectedFormat string `yaml:"rejected_format"`
	RejectedSize   string `yaml:"rejected_size"`
	Signed         string `yaml:"signed"`
	Unsigned       string `yaml:"unsigned"`
}

// LoadRules 解析并校验规则表
func LoadRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("解析助手规则失败: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// DefaultRules 内置规则表
func DefaultRules() (*Rules, error) {
	return LoadRules(defaultRules)
}

// Validate 校验规则表完整性
func (r *Rules) Validate() error {
	var errs []error

	if r.FAQ.Fallback == "" {
		errs = append(errs, errors.New("faq.fallback 不能为空"))
	}
	for i, e := range r.FAQ.Entries {
		if e.Trigger == "" || e.Answer == "" {
			errs = append(errs, fmt.Errorf("faq.entries[%d] 缺少 trigger 或 answer", i))
		}
	}

	if r.Suggestions.Fallback == "" {
		errs = append(errs, errors.New("suggestions.fallback 不能为空"))
	}
	for i, s := range r.Suggestions.Rules {
		switch s.Field {
		case FieldLevel, FieldInstrument, FieldTopic:
		default:
			errs = append(errs, fmt.Errorf("suggestions.rules[%d] 未知字段 %q", i, s.Field))
		}
		if len(s.Keywords) == 0 || s.Suggestion == "" {
			errs = append(errs, fmt.Errorf("suggestions.rules[%d] 缺少 keywords 或 suggestion", i))
		}
	}

	if r.FamilyMessages.Fallback == "" {
		errs = append(errs, errors.New("family_messages.fallback 不能为空"))
	}
	for i, f := range r.FamilyMessages.Rules {
		if len(f.Keywords) == 0 || f.Template == "" {
			errs = append(errs, fmt.Errorf("family_messages.rules[%d] 缺少 keywords 或 template", i))
		}
	}

	d := r.DocumentReview
	if len(d.AllowedExtensions) == 0 {
		errs = append(errs, errors.New("document_review.allowed_extensions 不能为空"))
	}
	if d.MaxBytes <= 0 {
		errs = append(errs, errors.New("document_review.max_bytes 必须为正数"))
	}
	if d.SignatureToken == "" {
		errs = append(errs, errors.New("document_review.signature_token 不能为空"))
	}
	m := d.Messages
	if m.RejectedFormat == "" || m.RejectedSize == "" || m.Signed == "" || m.Unsigned == "" {
		errs = append(errs, errors.New("document_review.messages 不完整"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("助手规则无效: %w", errors.Join(errs...))
	}
	return nil
}
