package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct valida un DTO con go-playground/validator y devuelve un
// mensaje legible con los campos que fallaron, o "" si todo está bien.
func validateStruct(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "datos inválidos"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return "campos inválidos: " + strings.Join(fields, ", ")
}
