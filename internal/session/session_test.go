package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteira-web/internal/models"
)

func routerDeTeste() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("segredo-de-teste"))
	r.Use(sessions.Sessions("sessao_teste", store))
	return r
}

func TestSalvarERecuperar(t *testing.T) {
	r := routerDeTeste()
	r.GET("/entrar", func(c *gin.Context) {
		err := Salvar(c, "tok123", &models.Usuario{Nome: "Maria", Email: "maria@ex.com"})
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})
	r.GET("/quem", func(c *gin.Context) {
		u := UsuarioAtual(c)
		require.NotNil(t, u)
		c.String(http.StatusOK, "%s|%s", Token(c), u.Nome)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/entrar", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/quem", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, "tok123|Maria", w2.Body.String())
}

func TestLimparDerrubaTokenEPerfil(t *testing.T) {
	r := routerDeTeste()
	r.GET("/entrar", func(c *gin.Context) {
		require.NoError(t, Salvar(c, "tok", &models.Usuario{Nome: "Maria"}))
		c.Status(http.StatusOK)
	})
	r.GET("/sair", func(c *gin.Context) {
		Limpar(c)
		c.Status(http.StatusOK)
	})
	r.GET("/quem", func(c *gin.Context) {
		// logout não pode deixar nada para trás
		assert.Empty(t, Token(c))
		assert.Nil(t, UsuarioAtual(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/entrar", nil))

	req := httptest.NewRequest(http.MethodGet, "/sair", nil)
	for _, ck := range w.Result().Cookies() {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	req2 := httptest.NewRequest(http.MethodGet, "/quem", nil)
	for _, ck := range w2.Result().Cookies() {
		req2.AddCookie(ck)
	}
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req2)
	assert.Equal(t, http.StatusOK, w3.Code)
}

func tokenComExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "maria@ex.com",
		"exp": exp.Unix(),
	})
	assinado, err := tok.SignedString([]byte("chave-do-backend"))
	require.NoError(t, err)
	return assinado
}

func TestTokenExpirado(t *testing.T) {
	agora := time.Now()

	assert.False(t, TokenExpirado(tokenComExp(t, agora.Add(time.Hour)), agora))
	assert.True(t, TokenExpirado(tokenComExp(t, agora.Add(-time.Hour)), agora))

	// token ilegível conta como expirado
	assert.True(t, TokenExpirado("nao-e-um-jwt", agora))
}
