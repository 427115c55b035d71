package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/skillsmatrix/backend/internal/domain/entities"
)

// RegisterValidators registra as regras de validação customizadas no
// binding do gin. Deve ser chamado uma vez na subida da aplicação.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("skilllevel", validateSkillLevel)
	}
}

func validateSkillLevel(fl validator.FieldLevel) bool {
	return entities.SkillLevel(fl.Field().String()).IsValid()
}

// BindingErrors converte erros do validator em erros de campo para a
// resposta RFC 7807
func BindingErrors(err error) []ValidationError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	out := make([]ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		out = append(out, ValidationError{
			Field:   fieldError.Field(),
			Message: "valor inválido para o campo",
			Tag:     fieldError.Tag(),
		})
	}
	return out
}
