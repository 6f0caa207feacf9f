package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"esteira-web/internal/cache"
	"esteira-web/internal/models"
	"esteira-web/internal/prazo"
	"esteira-web/internal/session"
)

func ListarTarefas(c *gin.Context) {
	tarefas, err := API.ListarTarefas(c.Request.Context(), session.Token(c))
	if err != nil {
		falhaAPI(c, err, "Não foi possível carregar as tarefas", "/dashboard")
		return
	}

	filtro := c.Query("filtro")
	agora := time.Now()
	u := session.UsuarioAtual(c)
	nome := ""
	if u != nil {
		nome = u.Nome
	}
	visiveis := models.FiltrarTarefas(tarefas, filtro, nome, agora)

	render(c, http.StatusOK, "tarefas.html", gin.H{
		"Tarefas":   visiveis,
		"Filtro":    filtro,
		"Total":     len(tarefas),
		"Prazos":    textosPrazo(visiveis, agora),
		"Situacoes": situacoes(visiveis, agora, prazo.LimiteLista),
	})
}

func DetalheTarefa(c *gin.Context) {
	tarefa, err := API.ObterTarefa(c.Request.Context(), session.Token(c), c.Param("id"))
	if err != nil {
		falhaAPI(c, err, "Tarefa não encontrada", "/tarefas")
		return
	}

	agora := time.Now()
	render(c, http.StatusOK, "tarefa_detalhe.html", gin.H{
		"Tarefa":     tarefa,
		"TextoPrazo": prazo.TextoPrazo(tarefa.Prazo, agora),
		"Situacao":   prazo.Classificar(tarefa.Prazo, tarefa.Status == models.TarefaConcluida, agora, prazo.LimiteLista),
	})
}

// SalvarObservacao grava o texto editado na tela de detalhe. A edição fica
// local (textarea) até este submit; só então vira PUT parcial.
func SalvarObservacao(c *gin.Context) {
	id := c.Param("id")
	obs := c.PostForm("observacao")

	op, err := API.AtualizarTarefa(c.Request.Context(), session.Token(c), id, models.TarefaUpdate{
		Observacao: &obs,
	})
	if err != nil {
		falhaAPI(c, err, "Não foi possível salvar a observação", "/tarefas/"+id)
		return
	}
	registrarOperacao(c, "tarefa", id, "observacao", op, "Observação salva")
	c.Redirect(http.StatusFound, "/tarefas/"+id)
}

// ConcluirTarefa fecha a tarefa com carimbo de conclusão. Tarefa atrasada só
// conclui com justificativa na observação.
func ConcluirTarefa(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	token := session.Token(c)

	tarefa, err := API.ObterTarefa(ctx, token, id)
	if err != nil {
		falhaAPI(c, err, "Tarefa não encontrada", "/tarefas")
		return
	}

	agora := time.Now()
	obs := c.PostForm("observacao")
	atrasada := prazo.Classificar(tarefa.Prazo, tarefa.Status == models.TarefaConcluida, agora, prazo.LimiteLista) == prazo.Atrasada
	if atrasada && obs == "" && tarefa.Observacao == "" {
		session.FlashErro(c, "Tarefa atrasada: informe o motivo na observação antes de concluir")
		c.Redirect(http.StatusFound, "/tarefas/"+id)
		return
	}

	status := models.TarefaConcluida
	upd := models.TarefaUpdate{
		Status:        &status,
		DataConclusao: &agora,
	}
	if obs != "" {
		upd.Observacao = &obs
	}

	op, err := API.AtualizarTarefa(ctx, token, id, upd)
	if err != nil {
		falhaAPI(c, err, "Não foi possível concluir a tarefa", "/tarefas/"+id)
		return
	}
	registrarOperacao(c, "tarefa", id, "concluir", op, "Tarefa concluída")
	invalidarKanban(c, tarefa.ProjetoID)
	c.Redirect(http.StatusFound, destinoRetorno(c, "/tarefas/"+id))
}

type colunaKanbanView struct {
	models.ColunaDef
	Tarefas []models.Tarefa
}

// KanbanPage desenha o quadro de um projeto. Ordem de colunas fixa
// (ColunasKanban); o payload é mapa e mapa não tem ordem.
func KanbanPage(c *gin.Context) {
	ctx := c.Request.Context()
	token := session.Token(c)

	projetos, err := API.ListarProjetos(ctx, token)
	if err != nil {
		falhaAPI(c, err, "Não foi possível carregar os projetos", "/dashboard")
		return
	}

	projetoID := c.Query("projeto")
	if projetoID == "" && len(projetos) > 0 {
		projetoID = projetos[0].ID
	}

	data := gin.H{
		"Projetos":  projetos,
		"ProjetoID": projetoID,
	}
	if projetoID == "" {
		render(c, http.StatusOK, "kanban.html", data)
		return
	}

	var porColuna map[string]models.ColunaKanban
	chave := "kanban:" + projetoID
	if !Cache.Get(ctx, chave, &porColuna) {
		porColuna, err = API.Kanban(ctx, token, projetoID)
		if err != nil {
			falhaAPI(c, err, "Não foi possível carregar o kanban", "/projetos")
			return
		}
		Cache.Set(ctx, chave, porColuna, cache.TTLPolling)
	}

	colunas := make([]colunaKanbanView, 0, len(models.ColunasKanban))
	agora := time.Now()
	situacoesPorID := map[string]prazo.Situacao{}
	for _, def := range models.ColunasKanban {
		tarefas := porColuna[def.ID].Tarefas
		for _, t := range tarefas {
			situacoesPorID[t.ID] = prazo.Classificar(t.Prazo, t.Status == models.TarefaConcluida, agora, prazo.LimiteKanban)
		}
		colunas = append(colunas, colunaKanbanView{ColunaDef: def, Tarefas: tarefas})
	}

	data["Colunas"] = colunas
	data["Situacoes"] = situacoesPorID
	render(c, http.StatusOK, "kanban.html", data)
}

// MoverTarefa traduz o drop do kanban. Soltar na própria coluna não gera
// chamada nenhuma; soltar em Concluído conclui; qualquer outra coluna vira
// mover para a etapa correspondente.
func MoverTarefa(c *gin.Context) {
	id := c.Param("id")
	destino := c.PostForm("coluna")
	origem := c.PostForm("coluna_origem")
	projetoID := c.PostForm("projeto_id")
	voltar := "/kanban?projeto=" + url.QueryEscape(projetoID)

	if !models.ColunaKanbanValida(destino) {
		session.FlashErro(c, "Coluna de destino desconhecida")
		c.Redirect(http.StatusFound, voltar)
		return
	}
	if destino == origem {
		c.Redirect(http.StatusFound, voltar)
		return
	}

	ctx := c.Request.Context()
	token := session.Token(c)

	var op *models.OperacaoResponse
	var err error
	acao := "mover"
	msg := "Tarefa movida"

	if destino == models.ColunaConcluido {
		agora := time.Now()
		status := models.TarefaConcluida
		op, err = API.AtualizarTarefa(ctx, token, id, models.TarefaUpdate{
			Status:        &status,
			DataConclusao: &agora,
		})
		acao = "concluir"
		msg = "Tarefa concluída"
	} else {
		etapa, _ := models.EtapaDaColuna(destino)
		op, err = API.MoverTarefa(ctx, token, id, etapa)
	}
	if err != nil {
		falhaAPI(c, err, "Não foi possível mover a tarefa", voltar)
		return
	}

	registrarOperacao(c, "tarefa", id, acao, op, msg)
	invalidarKanban(c, projetoID)
	c.Redirect(http.StatusFound, voltar)
}

func ExcluirTarefa(c *gin.Context) {
	id := c.Param("id")
	op, err := API.ExcluirTarefa(c.Request.Context(), session.Token(c), id)
	if err != nil {
		falhaAPI(c, err, "Não foi possível excluir a tarefa", "/tarefas")
		return
	}
	registrarOperacao(c, "tarefa", id, "excluir", op, "Tarefa excluída")
	c.Redirect(http.StatusFound, "/tarefas")
}

func invalidarKanban(c *gin.Context, projetoID string) {
	if projetoID == "" {
		return
	}
	Cache.Invalidar(c.Request.Context(), "kanban:"+projetoID, "esteira")
}

func textosPrazo(tarefas []models.Tarefa, agora time.Time) map[string]string {
	out := make(map[string]string, len(tarefas))
	for _, t := range tarefas {
		out[t.ID] = prazo.TextoPrazo(t.Prazo, agora)
	}
	return out
}

func situacoes(tarefas []models.Tarefa, agora time.Time, limite int) map[string]prazo.Situacao {
	out := make(map[string]prazo.Situacao, len(tarefas))
	for _, t := range tarefas {
		out[t.ID] = prazo.Classificar(t.Prazo, t.Status == models.TarefaConcluida, agora, limite)
	}
	return out
}
