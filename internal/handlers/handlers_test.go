package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esteira-web/internal/apiclient"
	"esteira-web/internal/cache"
	"esteira-web/internal/middleware"
	"esteira-web/internal/models"
	"esteira-web/internal/session"
)

// chamadaAPI registra o que o fake da API remota recebeu.
type chamadaAPI struct {
	Metodo string
	Path   string
	Query  string
	Corpo  []byte
}

type apiFake struct {
	srv      *httptest.Server
	chamadas []chamadaAPI
	rotas    map[string]http.HandlerFunc
}

func novaAPIFake(t *testing.T) *apiFake {
	t.Helper()
	f := &apiFake{rotas: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corpo, _ := io.ReadAll(r.Body)
		f.chamadas = append(f.chamadas, chamadaAPI{
			Metodo: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Corpo:  corpo,
		})
		if h, ok := f.rotas[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		// padrão: mutação bem sucedida / leitura vazia
		json.NewEncoder(w).Encode(models.OperacaoResponse{Status: models.OperacaoSuccess})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *apiFake) responde(metodo, path string, payload any) {
	f.rotas[metodo+" "+path] = func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}
}

func (f *apiFake) chamadasPara(path string) []chamadaAPI {
	var out []chamadaAPI
	for _, ch := range f.chamadas {
		if ch.Path == path {
			out = append(out, ch)
		}
	}
	return out
}

func tokenValido(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin@ex.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	assinado, err := tok.SignedString([]byte("chave"))
	require.NoError(t, err)
	return assinado
}

// ambiente monta o router de teste com os templates reais e o fake da API.
type ambiente struct {
	r       *gin.Engine
	api     *apiFake
	cookies []*http.Cookie
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := novaAPIFake(t)
	Init(apiclient.New(api.srv.URL, zap.NewNop()), cache.New("", "", zap.NewNop()), zap.NewNop())

	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"moeda":      func(v float64) string { return fmt.Sprintf("R$ %.2f", v) },
		"dataBR":     func(tm time.Time) string { return tm.Format("02/01/2006") },
		"percentual": func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
	})
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("segredo-de-teste"))
	r.Use(sessions.Sessions("sessao_teste", store))
	r.Use(middleware.InjectUser())

	r.POST("/login", Login)
	r.GET("/login", LoginForm)
	r.POST("/logout", Logout)
	r.POST("/contratos/novo", NovoContrato)
	r.POST("/contratos/:id/aprovar", AprovarContrato)
	r.POST("/projetos/:id/avancar-etapa", AvancarEtapa)
	r.POST("/tarefas/:id/mover", MoverTarefa)
	r.POST("/tarefas/:id/concluir", ConcluirTarefa)
	r.GET("/tarefas", ListarTarefas)
	r.GET("/projetos", ListarProjetos)
	r.GET("/dashboard", DashboardPage)

	amb := &ambiente{r: r, api: api}

	// rota auxiliar para plantar uma sessão autenticada
	tok := tokenValido(t)
	r.GET("/teste/entrar", func(c *gin.Context) {
		require.NoError(t, session.Salvar(c, tok, &models.Usuario{
			ID:    "u1",
			Nome:  "Admin",
			Email: "admin@ex.com",
			Role:  models.RoleAdministrador,
		}))
		c.Status(http.StatusOK)
	})
	return amb
}

func (a *ambiente) entrar(t *testing.T) {
	t.Helper()
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teste/entrar", nil))
	a.cookies = w.Result().Cookies()
	require.NotEmpty(t, a.cookies)
}

func (a *ambiente) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range a.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func TestLoginGravaSessaoERedireciona(t *testing.T) {
	amb := novoAmbiente(t)
	amb.api.responde(http.MethodPost, "/auth/login", models.Token{
		AccessToken: tokenValido(t),
		TokenType:   "bearer",
		User:        models.Usuario{Nome: "Maria", Email: "maria@ex.com"},
	})

	w := amb.postForm("/login", url.Values{"email": {"maria@ex.com"}, "senha": {"123456"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Result().Cookies())

	chamadas := amb.api.chamadasPara("/auth/login")
	require.Len(t, chamadas, 1)
	assert.Contains(t, string(chamadas[0].Corpo), "username=maria%40ex.com")
}

func TestLoginCredencialErradaReexibeFormulario(t *testing.T) {
	amb := novoAmbiente(t)
	amb.api.rotas["POST /auth/login"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	w := amb.postForm("/login", url.Values{"email": {"maria@ex.com"}, "senha": {"errada"}})

	// credencial errada não derruba para redirect: o formulário volta com o erro
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "E-mail ou senha inválidos")
	assert.Contains(t, w.Body.String(), "maria@ex.com")
}

func TestLogoutLimpaSessao(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)

	w := amb.postForm("/logout", url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestNovoContratoConverteNumeroEValor(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)

	w := amb.postForm("/contratos/novo", url.Values{
		"numero_contrato": {"1042"},
		"cliente":         {"Turma Medicina"},
		"faculdade":       {"UFX"},
		"semestre":        {"2025/1"},
		"valor":           {"15000.50"},
		"data_inicio":     {"2025-01-10"},
		"data_fim":        {"2025-12-20"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	chamadas := amb.api.chamadasPara("/contratos")
	require.Len(t, chamadas, 1)

	var corpo map[string]any
	require.NoError(t, json.Unmarshal(chamadas[0].Corpo, &corpo))
	// o formulário entrega strings; o corpo enviado tem que ser tipado
	assert.Equal(t, float64(1042), corpo["numero_contrato"])
	assert.Equal(t, 15000.50, corpo["valor"])
}

func TestNovoContratoNumeroInvalidoNaoChamaAPI(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)

	w := amb.postForm("/contratos/novo", url.Values{
		"numero_contrato": {"abc"},
		"cliente":         {"Turma"},
		"valor":           {"100"},
		"data_inicio":     {"2025-01-10"},
		"data_fim":        {"2025-12-20"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Número do contrato inválido")
	assert.Empty(t, amb.api.chamadasPara("/contratos"))
}

func TestOperacaoBloqueadaViraFlashSemMudarEstado(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)
	amb.api.responde(http.MethodPost, "/projetos/p1/avancar-etapa", models.OperacaoResponse{
		Status: models.OperacaoBlocked,
		Motivo: "Existem 3 tarefas pendentes",
	})
	amb.api.responde(http.MethodGet, "/projetos", []models.Projeto{})

	w := amb.postForm("/projetos/p1/avancar-etapa", url.Values{})

	// bloqueio redireciona normal; o motivo vai por flash na próxima página
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/projetos", w.Header().Get("Location"))

	// seguindo o redirect, a lista re-buscada traz o motivo como aviso
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		cookies = amb.cookies
	}
	req := httptest.NewRequest(http.MethodGet, "/projetos", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	amb.r.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Ação bloqueada: Existem 3 tarefas pendentes")
}

func TestDashboardIndisponivelMostraAvisoSemRedirecionar(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)
	amb.api.rotas["GET /dashboard"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, ck := range amb.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	amb.r.ServeHTTP(w, req)

	// API fora do ar não pode virar redirect: com token válido /login voltaria
	// para cá e o aviso nunca apareceria
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "Não foi possível carregar o dashboard")
	assert.Contains(t, w.Body.String(), "Tentar novamente")
}

func TestMoverMesmaColunaNaoChamaAPI(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)

	w := amb.postForm("/tarefas/t1/mover", url.Values{
		"coluna":        {"PRODUCAO"},
		"coluna_origem": {"PRODUCAO"},
		"projeto_id":    {"p1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, amb.api.chamadas)
}

func TestMoverParaConcluidoConcluiEmVezDeMover(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)

	w := amb.postForm("/tarefas/t1/mover", url.Values{
		"coluna":        {"CONCLUIDO"},
		"coluna_origem": {"PRODUCAO"},
		"projeto_id":    {"p1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)

	chamadas := amb.api.chamadasPara("/tarefas/t1")
	require.Len(t, chamadas, 1)
	assert.Equal(t, http.MethodPut, chamadas[0].Metodo)
	assert.Contains(t, string(chamadas[0].Corpo), `"status":"Concluído"`)
	assert.Contains(t, string(chamadas[0].Corpo), `"data_conclusao"`)
	assert.Empty(t, amb.api.chamadasPara("/tarefas/t1/mover"))
}

func TestMoverParaOutraColunaUsaEtapaDaColuna(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)

	w := amb.postForm("/tarefas/t1/mover", url.Values{
		"coluna":        {"CRIACAO_1_2"},
		"coluna_origem": {"REVISAO"},
		"projeto_id":    {"p1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	chamadas := amb.api.chamadasPara("/tarefas/t1/mover")
	require.Len(t, chamadas, 1)
	valores, err := url.ParseQuery(chamadas[0].Query)
	require.NoError(t, err)
	assert.Equal(t, "4 - Criação (1ª e 2ª AP)", valores.Get("nova_etapa"))
}

func TestConcluirAtrasadaExigeObservacao(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)
	amb.api.responde(http.MethodGet, "/tarefas/t1", models.Tarefa{
		ID:     "t1",
		Titulo: "Revisar fotos",
		Prazo:  time.Now().Add(-72 * time.Hour),
		Status: models.TarefaPendente,
	})

	w := amb.postForm("/tarefas/t1/concluir", url.Values{})

	// sem justificativa a conclusão nem chega na API
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/tarefas/t1", w.Header().Get("Location"))
	for _, ch := range amb.api.chamadasPara("/tarefas/t1") {
		assert.NotEqual(t, http.MethodPut, ch.Metodo)
	}

	w2 := amb.postForm("/tarefas/t1/concluir", url.Values{"observacao": {"atraso do fornecedor"}})
	assert.Equal(t, http.StatusFound, w2.Code)

	var puts []chamadaAPI
	for _, ch := range amb.api.chamadasPara("/tarefas/t1") {
		if ch.Metodo == http.MethodPut {
			puts = append(puts, ch)
		}
	}
	require.Len(t, puts, 1)
	assert.Contains(t, string(puts[0].Corpo), `"status":"Concluído"`)
	assert.Contains(t, string(puts[0].Corpo), "atraso do fornecedor")
}

func Test401NaLeituraDerrubaSessao(t *testing.T) {
	amb := novoAmbiente(t)
	amb.entrar(t)
	amb.api.rotas["GET /tarefas"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	req := httptest.NewRequest(http.MethodGet, "/tarefas", nil)
	for _, ck := range amb.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	amb.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
