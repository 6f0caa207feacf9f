package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"esteira-web/internal/cache"
	"esteira-web/internal/models"
	"esteira-web/internal/session"
)

// render embrulha c.HTML e injeta em todo template o usuário corrente, o
// menu gated por permissão, os flashes pendentes e o contador de
// notificações do sino.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(*models.Usuario); ok {
			data["CurrentUser"] = u
			data["Menu"] = MontarMenu(u)
			data["NaoLidas"] = contarNaoLidas(c, u)
		}
	}

	sucessos, erros := session.Flashes(c)
	data["FlashSucessos"] = sucessos
	data["FlashErros"] = erros

	c.HTML(status, tmpl, data)
}

// contarNaoLidas alimenta o badge do sino. Erro aqui não derruba a página:
// o badge fica em zero e o painel de notificações conta a história completa.
func contarNaoLidas(c *gin.Context, u *models.Usuario) int {
	chave := fmt.Sprintf("nao-lidas:%s", u.ID)

	var count int
	if Cache.Get(c.Request.Context(), chave, &count) {
		return count
	}

	count, err := API.ContarNaoLidas(c.Request.Context(), session.Token(c))
	if err != nil {
		Log.Warn("falha ao contar notificações", zap.Error(err))
		return 0
	}
	Cache.Set(c.Request.Context(), chave, count, cache.TTLPolling)
	return count
}
