package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexBlobRe = regexp.MustCompile(`^(?:[0-9a-fA-F]{2})+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hexblob", validateHexBlob)
	}
}

// validateHexBlob accepts non-empty even-length hex strings, the wire
// form of the cryptogram fields.
func validateHexBlob(fl validator.FieldLevel) bool {
	return hexBlobRe.MatchString(fl.Field().String())
}
