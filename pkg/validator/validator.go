// Package validator 配置gin的参数校验引擎，并把校验错误转换为字段级的AppError
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// Messager 请求DTO提供的字段提示信息
// key可以是"字段名.规则"（优先）或"字段名"，字段名为JSON名
type Messager interface {
	ValidationMessages() map[string]string
}

var (
	setupOnce sync.Once
	setupErr  error
)

// Setup 注册自定义规则到gin的校验引擎（重复调用只生效一次）
// 1. notblank：字符串不能只包含空白字符
// 2. cents：金额最多两位小数
// 3. 错误中的字段名使用json tag（title而不是Title）
func Setup() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin校验引擎不是go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonTagName)
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			setupErr = err
			return
		}
		setupErr = v.RegisterValidation("cents", cents)
	})
	return setupErr
}

// cents 浮点金额乘100后必须是整数(容忍二进制浮点误差)
func cents(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		scaled := field.Float() * 100
		return math.Abs(scaled-math.Round(scaled)) < 1e-6
	default:
		return false
	}
}

// jsonTagName 取json/uri/form tag作为字段名
func jsonTagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "uri", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Translate 把ShouldBind*返回的错误转换为AppError
// 学习要点：
// 1. ValidationErrors → 参数错误（40900），每个字段一条提示
// 2. JSON类型不匹配 → 参数错误，提示落在对应字段
// 3. 其它绑定错误（JSON语法错误、空请求体）→ 绑定错误（40901），提示落在body
func Translate(err error, req interface{}) *apperrors.AppError {
	var messages map[string]string
	if m, ok := req.(Messager); ok {
		messages = m.ValidationMessages()
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			name := fe.Field()
			if _, exists := fields[name]; exists {
				continue
			}
			fields[name] = messageFor(fe, messages)
		}
		return apperrors.Invalid(apperrors.ErrInvalidParams.Message, fields)
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		field := ute.Field
		msg, ok := messages[field]
		if !ok {
			msg = fmt.Sprintf("must be of type %s", ute.Type)
		}
		return apperrors.Invalid(apperrors.ErrInvalidParams.Message, map[string]string{field: msg})
	}

	return &apperrors.AppError{
		Code:    apperrors.ErrCodeBindError,
		Message: apperrors.ErrBindError.Message,
		Fields:  map[string]string{"body": err.Error()},
	}
}

// messageFor 优先使用DTO提供的提示，否则按规则生成
func messageFor(fe validator.FieldError, messages map[string]string) string {
	name := fe.Field()
	if msg, ok := messages[name+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[name]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required", "notblank":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "cents":
		return name + " must have at most 2 decimal places"
	default:
		return fmt.Sprintf("%s failed on the %s rule", name, fe.Tag())
	}
}
