package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"esteira-web/internal/apiclient"
	"esteira-web/internal/cache"
	"esteira-web/internal/database"
	"esteira-web/internal/metrics"
	"esteira-web/internal/models"
	"esteira-web/internal/session"
)

var (
	API   *apiclient.Client
	Cache *cache.Cache
	Log   = zap.NewNop()
)

func Init(api *apiclient.Client, c *cache.Cache, logger *zap.Logger) {
	API = api
	Cache = c
	if logger != nil {
		Log = logger
	}
}

// forcarLogin derruba a sessão após um 401 da API e manda para o login.
func forcarLogin(c *gin.Context) {
	session.Limpar(c)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// falhaAPI trata erro de transporte/decodificação de uma leitura: loga,
// avisa e volta para destino. 401 vira logout forçado.
func falhaAPI(c *gin.Context, err error, msg, destino string) {
	if errors.Is(err, apiclient.ErrNaoAutorizado) {
		forcarLogin(c)
		return
	}
	Log.Error(msg, zap.Error(err))
	session.FlashErro(c, msg)
	c.Redirect(http.StatusFound, destino)
	c.Abort()
}

func usuarioEmail(c *gin.Context) string {
	if u := session.UsuarioAtual(c); u != nil {
		return u.Email
	}
	return ""
}

// registrarOperacao fecha o ciclo de uma mutação: auditoria local, métrica e
// o aviso transitório. "blocked" nunca altera nada na tela — o motivo vira
// flash e o estado exibido continua sendo o que a API devolver no re-fetch.
func registrarOperacao(c *gin.Context, entidade, entidadeID, acao string, op *models.OperacaoResponse, msgSucesso string) {
	database.RegistrarAuditoria(usuarioEmail(c), entidade, entidadeID, acao, op.Status, op.Motivo)
	metrics.IncrementOperacao(entidade, acao, op.Status)

	switch {
	case op.Sucesso():
		session.FlashSucesso(c, msgSucesso)
	case op.Bloqueada():
		session.FlashErro(c, "Ação bloqueada: "+op.Motivo)
	default:
		motivo := op.Motivo
		if motivo == "" {
			motivo = "erro desconhecido"
		}
		session.FlashErro(c, "A operação falhou: "+motivo)
	}
}
