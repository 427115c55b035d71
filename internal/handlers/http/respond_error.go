package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsmatrix/backend/internal/domain/errors"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
)

// respondError traduz erros de domínio para respostas RFC 7807.
// Os códigos de provisionamento mantêm a grafia do contrato original.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, "Usuário"))
	case errs.Is(err, errors.ErrCollaboratorNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, "Colaborador"))
	case errs.Is(err, errors.ErrModuleNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, "Módulo"))
	case errs.Is(err, errors.ErrSkillClaimNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, "Autoavaliação"))
	case errs.Is(err, errors.ErrCareerPlanNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponse(c, "Plano de carreira"))

	case errs.Is(err, errors.ErrAccessEmailRequired):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, errors.ErrAccessEmailRequired.Error(),
			"Informe o email de acesso para criar o usuário do colaborador"))
	case errs.Is(err, errors.ErrAccessEmailInUse):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponse(c, errors.ErrAccessEmailInUse.Error(),
			"O email de acesso informado já está em uso"))
	case errs.Is(err, errors.ErrCollaboratorHasUser):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, errors.ErrCollaboratorHasUser.Error(),
			"O colaborador já possui usuário de acesso"))
	case errs.Is(err, errors.ErrCollaboratorNoUser):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, errors.ErrCollaboratorNoUser.Error(),
			"O colaborador não possui usuário de acesso"))
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponse(c, errors.ErrEmailAlreadyExists.Error(),
			"O email informado já está em uso"))

	case errs.Is(err, errors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponse(c))
	case errs.Is(err, errors.ErrWrongCurrentPassword):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, errors.ErrWrongCurrentPassword.Error(),
			"A senha atual informada não confere"))
	case errs.Is(err, errors.ErrPasswordUnchanged):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponse(c, errors.ErrPasswordUnchanged.Error(),
			"A nova senha deve ser diferente da atual"))

	case errs.Is(err, errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponse(c))
	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponse(c))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
	}
}
