package errors

import "errors"

// Business errors
// Nota: as mensagens são códigos de erro estáveis consumidos pela
// camada HTTP e pelo frontend; não traduzir nem reformular.
var (
	ErrUserNotFound         = errors.New("USER_NOT_FOUND")
	ErrCollaboratorNotFound = errors.New("COLLABORATOR_NOT_FOUND")
	ErrModuleNotFound       = errors.New("MODULE_NOT_FOUND")
	ErrSkillClaimNotFound   = errors.New("SKILL_CLAIM_NOT_FOUND")
	ErrCareerPlanNotFound   = errors.New("CAREER_PLAN_NOT_FOUND")
	ErrEmailAlreadyExists   = errors.New("EMAIL_ALREADY_EXISTS")
	ErrInvalidCredentials   = errors.New("INVALID_CREDENTIALS")
	ErrUnauthorized         = errors.New("UNAUTHORIZED")
	ErrForbidden            = errors.New("FORBIDDEN")
)

// Provisioning errors
// Os dois primeiros códigos fazem parte do contrato de borda original
// (400 e 409 respectivamente) e devem permanecer com esta grafia.
var (
	ErrAccessEmailRequired = errors.New("ACCESS_EMAIL_REQUIRED")
	ErrAccessEmailInUse    = errors.New("ACCESS_EMAIL_IN_USE")
	ErrCollaboratorHasUser = errors.New("COLLABORATOR_ALREADY_LINKED")
	ErrCollaboratorNoUser  = errors.New("COLLABORATOR_WITHOUT_USER")
)

// Auth errors
var (
	ErrWrongCurrentPassword = errors.New("CURRENT_PASSWORD_MISMATCH")
	ErrPasswordUnchanged    = errors.New("PASSWORD_UNCHANGED")
)

// ErrPersistenceFailure indica que uma escrita confirmada pelo banco
// não foi encontrada na releitura imediata. Não deve acontecer com a
// semântica de escritor único; propagado como falha genérica.
var ErrPersistenceFailure = errors.New("PERSISTENCE_FAILURE")

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
