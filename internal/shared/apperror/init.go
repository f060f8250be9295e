package apperror

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func Init() {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report fields by their yaml key (e.g. `yaml:"results_dir"`)
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// Validator returns the shared struct validator, initialising it on first use.
func Validator() *validator.Validate {
	Init()
	return validate
}
