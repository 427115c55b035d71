package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Code carrega o código de erro estável consumido pelo frontend.
type ErrorResponse struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Code     string            `json:"code,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro RFC 7807
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3333"
	}

	return ErrorResponse{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}
}

// ValidationErrorResponse cria uma resposta de erro de validação 400
func ValidationErrorResponse(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponse(
		c,
		errors.ProblemTypeValidation,
		"Dados inválidos",
		400,
		"A requisição contém campos inválidos ou ausentes",
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponse cria uma resposta de erro 400 com código
func BadRequestErrorResponse(c *gin.Context, code, detail string) ErrorResponse {
	response := NewErrorResponse(
		c,
		errors.ProblemTypeBadRequest,
		"Requisição inválida",
		400,
		detail,
	)
	response.Code = code
	return response
}

// NotFoundErrorResponse cria uma resposta de erro 404
func NotFoundErrorResponse(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponse(
		c,
		errors.ProblemTypeNotFound,
		"Recurso não encontrado",
		404,
		resource+" não encontrado",
	)
}

// ConflictErrorResponse cria uma resposta de erro 409 com código
func ConflictErrorResponse(c *gin.Context, code, detail string) ErrorResponse {
	response := NewErrorResponse(
		c,
		errors.ProblemTypeConflict,
		"Conflito",
		409,
		detail,
	)
	response.Code = code
	return response
}

// UnauthorizedErrorResponse cria uma resposta de erro 401
func UnauthorizedErrorResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(
		c,
		errors.ProblemTypeUnauthorized,
		"Não autenticado",
		401,
		"Credenciais ausentes ou inválidas",
	)
}

// ForbiddenErrorResponse cria uma resposta de erro 403
func ForbiddenErrorResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(
		c,
		errors.ProblemTypeForbidden,
		"Acesso negado",
		403,
		"Você não tem permissão para esta operação",
	)
}

// InternalErrorResponse cria uma resposta de erro 500
func InternalErrorResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(
		c,
		errors.ProblemTypeInternal,
		"Erro interno",
		500,
		"Ocorreu um erro inesperado",
	)
}
