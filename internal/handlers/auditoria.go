package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"esteira-web/internal/database"
)

// PaginaAuditoria lista o rastro local de mutações (admin). O dado é nosso,
// não da API remota.
func PaginaAuditoria(c *gin.Context) {
	registros, err := database.ListarAuditoria(200)
	if err != nil {
		Log.Error("falha ao ler auditoria", zap.Error(err))
	}
	render(c, http.StatusOK, "auditoria.html", gin.H{
		"Registros": registros,
		"Ativa":     database.DB != nil,
	})
}
