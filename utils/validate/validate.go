package validate

import (
	"encoding/json"
	"fmt"
	"mannamsalon/internal/core"
	cErr "mannamsalon/internal/pkg/error"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(c *gin.Context, obj interface{}, err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var b strings.Builder
		b.WriteString("Validation error:\n")
		for _, fe := range errs {
			field := jsonFieldName(obj, fe.StructField())
			ftype := fieldType(obj, fe.StructField())
			format := getFieldFormat(obj, fe.StructField())
			b.WriteString(fmt.Sprintf(" - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
				field, ftype, fe.Tag(), format))
		}
		return b.String()
	}
	return fmt.Sprintf("Validation error: %s", err.Error())
}

func jsonFieldName(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("json")
		if tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return structField
}

func fieldType(obj interface{}, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		return f.Type.Name()
	}
	return ""
}

func getFieldFormat(obj interface{}, structField string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		tag := f.Tag.Get("binding")
		if tag != "" {
			return strings.Split(tag, ",")
		}
	}
	return nil
}
func ParseObjectID(c *gin.Context, key string) (id primitive.ObjectID, cause error, responseErr error) {
	id, err := primitive.ObjectIDFromHex(c.Param(key))
	if err != nil {
		return primitive.NilObjectID, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return err, cErr.ValidateErr(ValidationErrorResponse(c, req, err))
	}
	return nil, nil
}

func BindQuery(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		return err, cErr.BadRequestParams(ValidationErrorResponse(c, req, err))
	}
	return nil, nil
}
func GetInt64Query(c *gin.Context, key string, defaultVal int64) (int64, error) {
	if v := c.Query(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	return defaultVal, nil
}
func PayloadToMap(payload any) (map[string]any, error) {
	// 先轉 JSON
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	// 再轉回 map[string]any
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

var (
	hhmmPattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	registerOnce sync.Once
)

// RegisterValidators 註冊 store / hhmm / ymd 三個自訂規則到 gin 的 validator
func RegisterValidators() {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("store", func(fl validator.FieldLevel) bool {
			return core.IsValidStore(fl.Field().String())
		})
		_ = engine.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return IsClock(fl.Field().String())
		})
		_ = engine.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
			return IsDate(fl.Field().String())
		})
	})
}

// IsClock HH:MM（00:00 ~ 23:59）
func IsClock(s string) bool {
	return hhmmPattern.MatchString(s)
}

// IsDate YYYY-MM-DD 且為實際存在的日期
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// DecodeAndValidate 將 JSON 參數解析進 DTO 後套用 binding 規則（RPC 使用）
func DecodeAndValidate(raw []byte, req any) (cause error, responseErr error) {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, req); err != nil {
			return err, cErr.ValidateErr("invalid parameters: " + err.Error())
		}
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return err, cErr.ValidateErr(ValidationErrorResponse(nil, req, err))
	}
	return nil, nil
}

func IsValidRole(role string) bool {
	return core.Role(role) == core.RoleManager || core.Role(role) == core.RoleEmployee
}

func IsValidStatus(status string) bool {
	return core.Status(status) == core.StatusActive || core.Status(status) == core.StatusResigned
}
