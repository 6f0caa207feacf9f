package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"esteira-web/internal/apiclient"
	"esteira-web/internal/cache"
	"esteira-web/internal/models"
	"esteira-web/internal/prazo"
	"esteira-web/internal/session"
)

// dashboardView agrega as três chamadas do painel; é o que vai para o cache.
type dashboardView struct {
	Dash      *models.Dashboard
	Atrasadas *models.TarefasAtrasadas
	Proximas  *models.ProximasVencer
}

// DashboardPage monta o painel gerencial: KPIs, atrasadas e próximas a
// vencer. As três leituras entram juntas no cache para a tela nunca misturar
// instantes diferentes.
func DashboardPage(c *gin.Context) {
	ctx := c.Request.Context()
	token := session.Token(c)

	var view dashboardView
	if !Cache.Get(ctx, "dashboard", &view) {
		dash, err := API.Dashboard(ctx, token)
		if err != nil {
			falhaDashboard(c, err, "Não foi possível carregar o dashboard")
			return
		}
		atrasadas, err := API.TarefasAtrasadas(ctx, token)
		if err != nil {
			falhaDashboard(c, err, "Não foi possível carregar as tarefas atrasadas")
			return
		}
		proximas, err := API.ProximasVencer(ctx, token)
		if err != nil {
			falhaDashboard(c, err, "Não foi possível carregar as próximas tarefas")
			return
		}
		view = dashboardView{Dash: dash, Atrasadas: atrasadas, Proximas: proximas}
		Cache.Set(ctx, "dashboard", view, cache.TTLDashboard)
	}

	agora := time.Now()
	render(c, http.StatusOK, "dashboard.html", gin.H{
		"KPIs":              view.Dash.KPIs,
		"ProjetosPorStatus": view.Dash.ProjetosPorStatus,
		"Gargalos":          view.Dash.GargalosResponsaveis,
		"Atrasadas":         view.Atrasadas,
		"Proximas":          view.Proximas,
		"PrazosProximas":    textosPrazo(view.Proximas.Tarefas, agora),
		"Situacoes":         situacoes(view.Proximas.Tarefas, agora, prazo.LimiteDashboard),
	})
}

// falhaDashboard renderiza o próprio painel com o aviso. O dashboard é o
// destino padrão de quem está logado; redirecionar para fora criaria um ciclo
// de redirects enquanto a API estiver fora do ar.
func falhaDashboard(c *gin.Context, err error, msg string) {
	if errors.Is(err, apiclient.ErrNaoAutorizado) {
		forcarLogin(c)
		return
	}
	Log.Error(msg, zap.Error(err))
	render(c, http.StatusBadGateway, "dashboard.html", gin.H{"ErroCarga": msg})
}
