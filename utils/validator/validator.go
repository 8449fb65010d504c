package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/urbannest/furniture-store/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("productcategory", validateProductCategory)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// validateProductCategory accepts only ids from the fixed category set.
func validateProductCategory(fl gpvalidator.FieldLevel) bool {
	return constant.IsValidCategory(constant.CategoryID(fl.Field().String()))
}
