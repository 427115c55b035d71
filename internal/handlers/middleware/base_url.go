package middleware

import "github.com/gin-gonic/gin"

// BaseURL disponibiliza a URL base da API para a montagem das URIs de
// problema RFC 7807
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_url", baseURL)
		c.Next()
	}
}
