package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esteira-web/internal/session"
)

// RequireAuth barra quem não tem token na sessão. Token com exp vencido é
// derrubado aqui mesmo, antes de qualquer ida à API.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.Token(c)
		if token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if session.TokenExpirado(token, time.Now()) {
			session.Limpar(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission esconde a rota de quem não tem a chave. A API ainda
// valida do lado dela; aqui é só a camada de apresentação.
func RequirePermission(chave string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := session.UsuarioAtual(c)
		if u == nil || !u.TemPermissao(chave) {
			c.String(http.StatusForbidden, "Você não tem permissão para: %s", chave)
			c.Abort()
			return
		}
		c.Next()
	}
}
