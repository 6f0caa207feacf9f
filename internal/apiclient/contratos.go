package apiclient

import (
	"context"
	"net/http"

	"esteira-web/internal/models"
)

func (c *Client) ListarContratos(ctx context.Context, token string) ([]models.Contrato, error) {
	var contratos []models.Contrato
	if err := c.getJSON(ctx, token, "/contratos", &contratos); err != nil {
		return nil, err
	}
	return contratos, nil
}

func (c *Client) ObterContrato(ctx context.Context, token, id string) (*models.Contrato, error) {
	var contrato models.Contrato
	if err := c.getJSON(ctx, token, "/contratos/"+id, &contrato); err != nil {
		return nil, err
	}
	return &contrato, nil
}

func (c *Client) CriarContrato(ctx context.Context, token string, novo models.ContratoCreate) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPost, "/contratos", novo, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) AtualizarContrato(ctx context.Context, token, id string, upd models.ContratoUpdate) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPut, "/contratos/"+id, upd, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// AprovarContrato pede a transição Ativo → Em Andamento; o backend cria o
// projeto e as tarefas iniciais quando aceita.
func (c *Client) AprovarContrato(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPut, "/contratos/"+id+"/aprovar", nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Client) FinalizarContrato(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodPut, "/contratos/"+id+"/finalizar", nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// ExcluirContrato: o backend bloqueia quando há projeto dependente.
func (c *Client) ExcluirContrato(ctx context.Context, token, id string) (*models.OperacaoResponse, error) {
	var op models.OperacaoResponse
	if err := c.sendJSON(ctx, token, http.MethodDelete, "/contratos/"+id, nil, &op); err != nil {
		return nil, err
	}
	return &op, nil
}
