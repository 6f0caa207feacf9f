package apiclient

import (
	"context"
	"net/http"

	"esteira-web/internal/models"
)

func (c *Client) ListarProjetos(ctx context.Context, token string) ([]models.Projeto, error) {
	var projetos []models.Projeto
	if err := c.getJSON(ctx, token, "/projetos", &projetos); err != nil {
		return nil, err
	}
	return projetos, nil
}

func (c *Client) ObterProjeto(ctx context.Context, token, id string) (*models.Projeto, error) {
	var projeto models.Projeto
	if err := c.getJSON(ctx, token, "/projetos/"+id, &projeto); err != nil {
		return nil, err
	}
	return &projeto, nil
}

// Esteira devolve os projetos já agrupados por coluna de macro etapa.
func (c *Client) Esteira(ctx context.Context, token string) (map[string]models.ColunaEsteira, error) {
	var esteira map[string]models.ColunaEsteira
	if err := c.getJSON(ctx, token, "/projetos/esteira/visualizacao", &esteira); err != nil {
		return nil, err
	}
	return esteira, nil
}

// AvancarEtapa pede o avanço para a próxima etapa fina; as regras (tarefas
// pendentes, dependências) são todas do backend.
func (c *Client) AvancarEtapa(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPost, "/projetos/"+id+"/avancar-etapa", nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) AvancarMacroEtapa(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPost, "/projetos/"+id+"/avancar-macro-etapa", nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) FinalizarProjeto(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPost, "/projetos/"+id+"/finalizar", nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}
