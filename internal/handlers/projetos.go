package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esteira-web/internal/cache"
	"esteira-web/internal/models"
	"esteira-web/internal/prazo"
	"esteira-web/internal/session"
)

func ListarProjetos(c *gin.Context) {
	projetos, err := API.ListarProjetos(c.Request.Context(), session.Token(c))
	if err != nil {
		falhaAPI(c, err, "Não foi possível carregar os projetos", "/dashboard")
		return
	}

	filtro := c.Query("filtro")
	agora := time.Now()
	visiveis := models.FiltrarProjetos(projetos, filtro)

	entregas := make(map[string]string, len(visiveis))
	for _, p := range visiveis {
		entregas[p.ID] = prazo.TextoEntrega(p.DataEntrega, agora)
	}

	render(c, http.StatusOK, "projetos.html", gin.H{
		"Projetos": visiveis,
		"Entregas": entregas,
		"Filtro":   filtro,
		"Total":    len(projetos),
	})
}

// colunaEsteiraView junta a definição fixa da coluna com o conteúdo da API.
type colunaEsteiraView struct {
	models.ColunaDef
	Projetos []models.Projeto
}

// Esteira desenha o fluxo macro. A ordem das colunas é fixa (ColunasEsteira);
// o payload da API é um mapa e mapa não tem ordem.
func Esteira(c *gin.Context) {
	ctx := c.Request.Context()
	token := session.Token(c)

	var porColuna map[string]models.ColunaEsteira
	if !Cache.Get(ctx, "esteira", &porColuna) {
		var err error
		porColuna, err = API.Esteira(ctx, token)
		if err != nil {
			falhaAPI(c, err, "Não foi possível carregar a esteira", "/dashboard")
			return
		}
		Cache.Set(ctx, "esteira", porColuna, cache.TTLPolling)
	}

	colunas := make([]colunaEsteiraView, 0, len(models.ColunasEsteira))
	for _, def := range models.ColunasEsteira {
		colunas = append(colunas, colunaEsteiraView{
			ColunaDef: def,
			Projetos:  porColuna[def.ID].Projetos,
		})
	}

	agora := time.Now()
	entregas := make(map[string]string)
	for _, col := range colunas {
		for _, p := range col.Projetos {
			entregas[p.ID] = prazo.TextoEntrega(p.DataEntrega, agora)
		}
	}

	render(c, http.StatusOK, "esteira.html", gin.H{
		"Colunas":  colunas,
		"Entregas": entregas,
	})
}

// AvancarEtapa pede o avanço fino; todas as regras (tarefas pendentes,
// dependências de etapa) moram no backend.
func AvancarEtapa(c *gin.Context) {
	id := c.Param("id")
	op, err := API.AvancarEtapa(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível avançar a etapa", "/projetos")
		return
	}
	registrarOperacao(c, "projeto", id, "avancar_etapa", op, "Projeto avançou de etapa")
	Cache.Invalidar(c.Request.Context(), "esteira")
	c.Redirect(http.StatusFound, destinoRetorno(c, "/projetos"))
}

func AvancarMacroEtapa(c *gin.Context) {
	id := c.Param("id")
	op, err := API.AvancarMacroEtapa(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível avançar a macro etapa", "/esteira")
		return
	}
	registrarOperacao(c, "projeto", id, "avancar_macro_etapa", op, "Projeto avançou de fase")
	Cache.Invalidar(c.Request.Context(), "esteira")
	c.Redirect(http.StatusFound, destinoRetorno(c, "/esteira"))
}

func FinalizarProjeto(c *gin.Context) {
	id := c.Param("id")
	op, err := API.FinalizarProjeto(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível finalizar o projeto", "/projetos")
		return
	}
	registrarOperacao(c, "projeto", id, "finalizar", op, "Projeto finalizado e contrato encerrado")
	Cache.Invalidar(c.Request.Context(), "esteira")
	c.Redirect(http.StatusFound, destinoRetorno(c, "/projetos"))
}

// destinoRetorno deixa a mesma ação servir à lista e à esteira: o formulário
// manda ?voltar= com a tela de origem.
func destinoRetorno(c *gin.Context, padrao string) string {
	switch v := c.Query("voltar"); v {
	case "/projetos", "/esteira", "/dashboard":
		return v
	default:
		return padrao
	}
}
