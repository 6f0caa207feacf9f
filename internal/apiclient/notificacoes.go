package apiclient

import (
	"context"
	"net/http"

	"esteira-web/internal/models"
)

func (c *Client) ListarNotificacoes(ctx context.Context, token string) ([]models.Notificacao, error) {
	var notificacoes []models.Notificacao
	if err := c.getJSON(ctx, token, "/notificacoes", &notificacoes); err != nil {
		return nil, err
	}
	return notificacoes, nil
}

func (c *Client) ContarNaoLidas(ctx context.Context, token string) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, token, "/notificacoes/nao-lidas", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) MarcarLida(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, token, http.MethodPut, "/notificacoes/"+id+"/ler", nil, nil)
}

func (c *Client) MarcarTodasLidas(ctx context.Context, token string) error {
	return c.sendJSON(ctx, token, http.MethodPut, "/notificacoes/ler-todas", nil, nil)
}
