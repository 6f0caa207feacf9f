package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esteira-web/internal/prazo"
	"esteira-web/internal/session"
)

func ListarNotificacoes(c *gin.Context) {
	notificacoes, err := API.ListarNotificacoes(c.Request.Context(), session.Token(c))
	if err != nil {
		falhaAPI(c, err, "Não foi possível carregar as notificações", "/dashboard")
		return
	}

	agora := time.Now()
	tempos := make(map[string]string, len(notificacoes))
	naoLidas := 0
	for _, n := range notificacoes {
		tempos[n.ID] = prazo.TempoRelativo(n.CreatedAt, agora)
		if !n.Lida {
			naoLidas++
		}
	}

	render(c, http.StatusOK, "notificacoes.html", gin.H{
		"Notificacoes":  notificacoes,
		"Tempos":        tempos,
		"TotalNaoLidas": naoLidas,
	})
}

// ContagemNaoLidas responde o polling de 30s do badge em JSON.
func ContagemNaoLidas(c *gin.Context) {
	u := session.UsuarioAtual(c)
	if u == nil {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": contarNaoLidas(c, u)})
}

// LerNotificacao marca como lida e, quando há tarefa associada, leva direto
// para ela.
func LerNotificacao(c *gin.Context) {
	id := c.Param("id")
	if err := API.MarcarLida(c.Request.Context(), session.Token(c), id); err != nil {
		falhaAPI(c, err, "Não foi possível marcar a notificação", "/notificacoes")
		return
	}
	invalidarNaoLidas(c)

	if tarefaID := c.PostForm("tarefa_id"); tarefaID != "" {
		c.Redirect(http.StatusFound, "/tarefas/"+tarefaID)
		return
	}
	c.Redirect(http.StatusFound, "/notificacoes")
}

func LerTodasNotificacoes(c *gin.Context) {
	if err := API.MarcarTodasLidas(c.Request.Context(), session.Token(c)); err != nil {
		falhaAPI(c, err, "Não foi possível marcar as notificações", "/notificacoes")
		return
	}
	invalidarNaoLidas(c)
	session.FlashSucesso(c, "Todas as notificações foram marcadas como lidas")
	c.Redirect(http.StatusFound, "/notificacoes")
}

func invalidarNaoLidas(c *gin.Context) {
	if u := session.UsuarioAtual(c); u != nil {
		Cache.Invalidar(c.Request.Context(), fmt.Sprintf("nao-lidas:%s", u.ID))
	}
}
