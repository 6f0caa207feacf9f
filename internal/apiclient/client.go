// Package apiclient fala com a API de gestão (FastAPI remota). É um wrapper
// fino: anexa o bearer token, propaga context e devolve os payloads tipados.
// Nenhuma mutação é repetida automaticamente; recusa de regra de negócio
// ("blocked") é dado de resposta, não erro.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"esteira-web/internal/metrics"
)

// ErrNaoAutorizado sinaliza 401 da API: token ausente, inválido ou expirado.
// Quem recebe deve derrubar a sessão e mandar o usuário para o login.
var ErrNaoAutorizado = errors.New("não autorizado pela API")

// ErroAPI é um 4xx/5xx da API com o detail legível do FastAPI.
type ErroAPI struct {
	StatusCode int
	Detail     string
}

func (e *ErroAPI) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second, // um clique não pode pendurar o painel
		},
		logger: logger,
	}
}

// do executa a chamada e decodifica a resposta em out (quando não nil).
// token vazio = endpoint público (login/register).
func (c *Client) do(ctx context.Context, token, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	inicio := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICallDuration(method, path, "erro", time.Since(inicio))
		c.logger.Error("falha de transporte na API",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("chamada %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.RecordAPICallDuration(method, path, strconv.Itoa(resp.StatusCode), time.Since(inicio))

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrNaoAutorizado
	}
	if resp.StatusCode >= 400 {
		return c.erroAPI(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificando resposta de %s: %w", path, err)
	}
	return nil
}

// getJSON / sendJSON são os atalhos usados pelos métodos tipados.

func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, token, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, token, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, token, method, path, body, "application/json", out)
}

func (c *Client) erroAPI(resp *http.Response) error {
	var detalhe struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&detalhe)
	return &ErroAPI{StatusCode: resp.StatusCode, Detail: detalhe.Detail}
}
