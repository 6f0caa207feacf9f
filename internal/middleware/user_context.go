package middleware

import (
	"github.com/gin-gonic/gin"

	"esteira-web/internal/session"
)

// InjectUser disponibiliza o perfil em cache para o render de qualquer página.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := session.UsuarioAtual(c); u != nil {
			c.Set("CurrentUser", u)
		}
		c.Next()
	}
}
