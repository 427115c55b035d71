package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/skillsmatrix/backend/internal/domain/entities"
	"github.com/skillsmatrix/backend/internal/handlers/dto"
	"github.com/skillsmatrix/backend/internal/services"
)

// Chaves do contexto gin preenchidas pelo Authenticate
const (
	ContextUserID    = "userId"
	ContextUserRole  = "userRole"
	ContextUserEmail = "userEmail"
)

// Authenticate valida o token Bearer JWT e carrega a identidade do
// usuário no contexto da requisição
func Authenticate(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponse(c))
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponse(c))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponse(c))
			return
		}

		userID, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		if userID == "" || !entities.Role(role).IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponse(c))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Set(ContextUserEmail, email)

		// Propaga o ator para a trilha de auditoria dos serviços
		c.Request = c.Request.WithContext(services.WithActor(c.Request.Context(), userID))

		c.Next()
	}
}

// RequireRoles autoriza apenas os papéis informados
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := entities.Role(c.GetString(ContextUserRole))
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ForbiddenErrorResponse(c))
	}
}
