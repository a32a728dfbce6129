package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateLogin checks the login payload before any user lookup happens.
func ValidateLogin(email, senha string) error {
	if strings.TrimSpace(email) == "" || senha == "" {
		return newFieldError("email", "E-mail e senha são obrigatórios")
	}
	if err := validate.Var(email, "email"); err != nil {
		return newFieldError("email", "E-mail inválido")
	}
	return nil
}
