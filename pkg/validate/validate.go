package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	errprocess "video_sharing_service/pkg/err"

	"github.com/go-playground/validator/v10"
)

var (
	v    *validator.Validate
	once sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New()

		// 以 json tag 作為錯誤訊息中的欄位名稱
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return v
}

// Struct validate s, failures become a Validation error naming the first bad field
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		switch fe.Tag() {
		case "required", "notblank":
			return errprocess.New(errprocess.KindValidation, fe.Field()+" is required")
		default:
			return errprocess.New(errprocess.KindValidation, fe.Field()+" is invalid")
		}
	}
	return errprocess.Wrap(errprocess.KindValidation, "invalid request", err)
}
