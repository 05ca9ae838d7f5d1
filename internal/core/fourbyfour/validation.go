package fourbyfour

import (
	"sync"

	"soda/internal/platform/net/http/bind"
)

// Tag is the struct validation tag for 4x4 string fields, e.g. `validate:"dive,fourbyfour"`
const Tag = "fourbyfour"

var (
	tagOnce sync.Once
	tagErr  error
)

// RegisterValidation adds Tag to the shared request validator; repeated calls are no-ops
func RegisterValidation() error {
	tagOnce.Do(func() {
		tagErr = bind.RegisterTag(Tag, func(fl bind.FieldLevel) bool {
			return IsValid(fl.Field().String())
		}, "{0} must be a 4x4 identifier like abcd-1234")
	})
	return tagErr
}
