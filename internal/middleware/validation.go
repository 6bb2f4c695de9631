package middleware

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/campuslink/internal/pkg/auth"
)

var registerValidators sync.Once

// RegisterValidators installs the custom binding rules and makes binding errors
// report json field names instead of Go field names.
func RegisterValidators() {
	registerValidators.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		// validator's max counts runes; bcrypt limits bytes
		_ = v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
			return auth.FitsBcrypt(fl.Field().String())
		})
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
