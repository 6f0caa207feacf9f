package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"esteira-web/internal/models"
)

// Login envia credenciais no formato OAuth2 form-encoded (username/password)
// que o endpoint espera.
func (c *Client) Login(ctx context.Context, email, senha string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", senha)

	var token models.Token
	err := c.do(ctx, "", http.MethodPost, "/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Register(ctx context.Context, novo models.UsuarioCreate) (*models.Token, error) {
	var token models.Token
	if err := c.sendJSON(ctx, "", http.MethodPost, "/auth/register", novo, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me valida o token em cache e devolve o perfil atual.
func (c *Client) Me(ctx context.Context, token string) (*models.Usuario, error) {
	var u models.Usuario
	if err := c.getJSON(ctx, token, "/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
