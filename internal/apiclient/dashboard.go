package apiclient

import (
	"context"

	"esteira-web/internal/models"
)

func (c *Client) Dashboard(ctx context.Context, token string) (*models.Dashboard, error) {
	var dash models.Dashboard
	if err := c.getJSON(ctx, token, "/dashboard", &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (c *Client) TarefasAtrasadas(ctx context.Context, token string) (*models.TarefasAtrasadas, error) {
	var atrasadas models.TarefasAtrasadas
	if err := c.getJSON(ctx, token, "/dashboard/tarefas-atrasadas", &atrasadas); err != nil {
		return nil, err
	}
	return &atrasadas, nil
}

func (c *Client) ProximasVencer(ctx context.Context, token string) (*models.ProximasVencer, error) {
	var proximas models.ProximasVencer
	if err := c.getJSON(ctx, token, "/dashboard/proximas-vencer", &proximas); err != nil {
		return nil, err
	}
	return &proximas, nil
}
