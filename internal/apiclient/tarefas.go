package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"esteira-web/internal/models"
)

func (c *Client) ListarTarefas(ctx context.Context, token string) ([]models.Tarefa, error) {
	var tarefas []models.Tarefa
	if err := c.getJSON(ctx, token, "/tarefas", &tarefas); err != nil {
		return nil, err
	}
	return tarefas, nil
}

func (c *Client) ObterTarefa(ctx context.Context, token, id string) (*models.Tarefa, error) {
	var tarefa models.Tarefa
	if err := c.getJSON(ctx, token, "/tarefas/"+id, &tarefa); err != nil {
		return nil, err
	}
	return &tarefa, nil
}

// Kanban devolve as tarefas do projeto agrupadas por coluna.
func (c *Client) Kanban(ctx context.Context, token, projetoID string) (map[string]models.ColunaKanban, error) {
	var kanban map[string]models.ColunaKanban
	if err := c.getJSON(ctx, token, "/tarefas/kanban/"+projetoID, &kanban); err != nil {
		return nil, err
	}
	return kanban, nil
}

// AtualizarTarefa é parcial: usada para observação, status e conclusão.
func (c *Client) AtualizarTarefa(ctx context.Context, token, id string, upd models.TarefaUpdate) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPut, "/tarefas/"+id, upd, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// MoverTarefa leva a tarefa para outra etapa; a etapa alvo vai em query
// string, como o endpoint espera.
func (c *Client) MoverTarefa(ctx context.Context, token, id, novaEtapa string) (*models.OperacaoResponse, error) {
	path := "/tarefas/" + id + "/mover?nova_etapa=" + url.QueryEscape(novaEtapa)
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPut, path, nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) ExcluirTarefa(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodDelete, "/tarefas/"+id, nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}
