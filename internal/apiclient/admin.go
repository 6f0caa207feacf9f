package apiclient

import (
	"context"
	"net/http"

	"esteira-web/internal/models"
)

// Gestão de usuários e permissões: endpoints restritos a administradores; a
// API devolve 403 se o token não tiver a permissão admin.

func (c *Client) ListarUsuarios(ctx context.Context, token string) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := c.getJSON(ctx, token, "/admin/users", &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (c *Client) CriarUsuario(ctx context.Context, token string, novo models.UsuarioCreate) error {
	return c.sendJSON(ctx, token, http.MethodPost, "/admin/users", novo, nil)
}

func (c *Client) AtualizarUsuario(ctx context.Context, token, id string, upd models.UsuarioUpdate) error {
	return c.sendJSON(ctx, token, http.MethodPut, "/admin/users/"+id, upd, nil)
}

func (c *Client) ExcluirUsuario(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, token, http.MethodDelete, "/admin/users/"+id, nil, nil)
}
