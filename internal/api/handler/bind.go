package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"

	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/response"
)

// 与 service 层字段错误保持一致的文案
const (
	msgRequired    = "Este campo es obligatorio"
	msgInvalidDate = "Fecha no válida, use el formato AAAA-MM-DD"
	msgInvalidType = "Tipo de dato no válido"
	msgBadBody     = "Cuerpo de la petición no válido"
	msgBodyTooBig  = "La petición es demasiado grande"
)

var (
	translatorOnce sync.Once
	translator     ut.Translator
)

// initValidator 注册 JSON 字段名与西班牙语翻译（gin 默认校验器只初始化一次）
func initValidator() ut.Translator {
	translatorOnce.Do(func() {
		locale := es.New()
		translator, _ = ut.New(locale, locale).GetTranslator("es")

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// 错误里使用 json/form 标签名，而不是 Go 字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = es_translations.RegisterDefaultTranslations(v, translator)
		registerTranslation(v, "required", msgRequired)
		registerTranslation(v, "datetime", msgInvalidDate)
	})
	return translator
}

// registerTranslation 覆盖单个标签的文案（不带字段名）
func registerTranslation(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag)
			return s
		},
	)
}

// bindJSON 解析 JSON 请求体；失败时已写入响应，调用方直接 return
func bindJSON(c *gin.Context, req interface{}) bool {
	initValidator()
	if err := c.ShouldBindJSON(req); err != nil {
		renderBindError(c, err)
		return false
	}
	return true
}

// bindQuery 解析查询参数
func bindQuery(c *gin.Context, req interface{}) bool {
	initValidator()
	if err := c.ShouldBindQuery(req); err != nil {
		renderBindError(c, err)
		return false
	}
	return true
}

// renderBindError 将绑定错误转换为字段级错误
func renderBindError(c *gin.Context, err error) {
	_ = c.Error(err)

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, msgBodyTooBig)
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		trans := initValidator()
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			if _, exists := fields[fe.Field()]; !exists {
				fields[fe.Field()] = fe.Translate(trans)
			}
		}
		response.ValidationFailed(c, fields)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.ValidationFailed(c, map[string]string{typeErr.Field: msgInvalidType})
		return
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		response.BadRequest(c, 10001, msgInvalidType)
		return
	}

	response.BadRequest(c, 10001, msgBadBody)
}

// renderValidation service 层返回的字段错误
func renderValidation(c *gin.Context, err error) {
	ve, _ := pkgerrors.AsValidation(err)
	response.ValidationFailed(c, ve.Fields)
}

// parseID 解析路径中的数字 ID；非数字 ID 视为不存在
func parseID(c *gin.Context, notFoundCode int, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, notFoundCode, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}
