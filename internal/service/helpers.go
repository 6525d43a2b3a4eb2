package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
)

// ── 内部辅助方法 ──

const msgInvalidDate = "Fecha no válida, use el formato AAAA-MM-DD"

func formatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTimestamp(*t)
	return &s
}

// parseDate 解析 AAAA-MM-DD，失败时记录字段错误并返回零值
func parseDate(ve *pkgerrors.ValidationError, field, value string) time.Time {
	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		ve.Add(field, msgInvalidDate)
		return time.Time{}
	}
	return t
}

func parseDatePtr(ve *pkgerrors.ValidationError, field string, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t := parseDate(ve, field, *value)
	return &t
}

// checkRef 校验外键引用存在；不存在时记录字段错误，其余错误原样返回
func checkRef(ve *pkgerrors.ValidationError, field, message string, lookup func() error) error {
	err := lookup()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ve.Add(field, message)
		return nil
	}
	return err
}
