package assistant

import (
	"path/filepath"
	"strings"

	"github.com/twistin/xestion-conservatorio-rsp/pkg/textutil"
)

// 文档审核结果状态
const (
	ReviewRejectedFormat = "rejected_format"
	ReviewRejectedSize   = "rejected_size"
	ReviewSigned         = "signed"
	ReviewUnsigned       = "unsigned"
)

// DocumentReview 文档审核结果
type DocumentReview struct {
	Status string `json:"status"`
	Result string `json:"result"`
}

// Accepted 文档是否被接收
func (r DocumentReview) Accepted() bool {
	return r.Status == ReviewSigned || r.Status == ReviewUnsigned
}

// ReviewDocument 只看文件名与大小：先校验扩展名，再校验大小，
// 最后文件名中出现签名标记即视为已签名。不读取文件内容。
func (a *Assistant) ReviewDocument(filename string, size int64) DocumentReview {
	rules := a.rules.DocumentReview

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !allowedExtension(ext, rules.AllowedExtensions) {
		return DocumentReview{Status: ReviewRejectedFormat, Result: rules.Messages.RejectedFormat}
	}
	if size > rules.MaxBytes {
		return DocumentReview{Status: ReviewRejectedSize, Result: rules.Messages.RejectedSize}
	}
	if textutil.ContainsFold(filepath.Base(filename), rules.SignatureToken) {
		return DocumentReview{Status: ReviewSigned, Result: rules.Messages.Signed}
	}
	return DocumentReview{Status: ReviewUnsigned, Result: rules.Messages.Unsigned}
}

func allowedExtension(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimPrefix(a, "."), ext) {
			return true
		}
	}
	return false
}
