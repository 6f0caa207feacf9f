// Package server monta o roteador gin: templates, sessão em cookie,
// middlewares e a árvore de rotas com as permissões por tela.
package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"esteira-web/internal/config"
	"esteira-web/internal/handlers"
	"esteira-web/internal/middleware"
	"esteira-web/internal/models"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetFuncMap(funcMap())
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   8 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("esteira_session", store))
	r.Use(middleware.Metrics())
	r.Use(middleware.InjectUser())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	r.GET("/login", handlers.LoginForm)
	r.POST("/login", handlers.Login)
	r.GET("/register", handlers.RegisterForm)
	r.POST("/register", handlers.Register)

	auth := r.Group("/", middleware.RequireAuth())
	{
		auth.POST("/logout", handlers.Logout)

		auth.GET("/dashboard", middleware.RequirePermission(models.PermDashboard), handlers.DashboardPage)

		contratos := auth.Group("/contratos", middleware.RequirePermission(models.PermContratosVer))
		{
			contratos.GET("", handlers.ListarContratos)
			contratos.GET("/relatorio", handlers.RelatorioContratos)
			contratos.GET("/novo", middleware.RequirePermission(models.PermContratosCriar), handlers.NovoContratoForm)
			contratos.POST("/novo", middleware.RequirePermission(models.PermContratosCriar), handlers.NovoContrato)
			contratos.GET("/:id/editar", middleware.RequirePermission(models.PermContratosEditar), handlers.EditarContratoForm)
			contratos.POST("/:id/editar", middleware.RequirePermission(models.PermContratosEditar), handlers.EditarContrato)
			contratos.POST("/:id/aprovar", middleware.RequirePermission(models.PermContratosAprovar), handlers.AprovarContrato)
			contratos.POST("/:id/finalizar", middleware.RequirePermission(models.PermContratosFinalizar), handlers.FinalizarContrato)
			contratos.POST("/:id/excluir", middleware.RequirePermission(models.PermContratosExcluir), handlers.ExcluirContrato)
		}

		projetos := auth.Group("/projetos", middleware.RequirePermission(models.PermProjetosVer))
		{
			projetos.GET("", handlers.ListarProjetos)
			projetos.POST("/:id/avancar-etapa", middleware.RequirePermission(models.PermProjetosAvancar), handlers.AvancarEtapa)
			projetos.POST("/:id/avancar-macro-etapa", middleware.RequirePermission(models.PermProjetosAvancar), handlers.AvancarMacroEtapa)
			projetos.POST("/:id/finalizar", middleware.RequirePermission(models.PermProjetosAvancar), handlers.FinalizarProjeto)
		}
		auth.GET("/esteira", middleware.RequirePermission(models.PermProjetosVer), handlers.Esteira)

		tarefas := auth.Group("/tarefas", middleware.RequirePermission(models.PermTarefasVer))
		{
			tarefas.GET("", handlers.ListarTarefas)
			tarefas.GET("/:id", handlers.DetalheTarefa)
			tarefas.POST("/:id/observacao", middleware.RequirePermission(models.PermTarefasEditar), handlers.SalvarObservacao)
			tarefas.POST("/:id/concluir", middleware.RequirePermission(models.PermTarefasConcluir), handlers.ConcluirTarefa)
			tarefas.POST("/:id/mover", middleware.RequirePermission(models.PermTarefasMover), handlers.MoverTarefa)
			tarefas.POST("/:id/excluir", middleware.RequirePermission(models.PermTarefasEditar), handlers.ExcluirTarefa)
		}
		auth.GET("/kanban", middleware.RequirePermission(models.PermTarefasVer), handlers.KanbanPage)

		auth.GET("/notificacoes", handlers.ListarNotificacoes)
		auth.GET("/notificacoes/contagem", handlers.ContagemNaoLidas)
		auth.POST("/notificacoes/:id/ler", handlers.LerNotificacao)
		auth.POST("/notificacoes/ler-todas", handlers.LerTodasNotificacoes)

		admin := auth.Group("/admin", middleware.RequirePermission(models.PermAdmin))
		{
			admin.GET("/usuarios", handlers.ListarUsuarios)
			admin.POST("/usuarios", handlers.CriarUsuario)
			admin.POST("/usuarios/:id", handlers.AtualizarUsuario)
			admin.POST("/usuarios/:id/excluir", handlers.ExcluirUsuario)
			admin.GET("/auditoria", handlers.PaginaAuditoria)
		}
	}

	return r
}

// funcMap traz os formatadores pt-BR usados nos templates.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"moeda": func(v float64) string {
			return fmt.Sprintf("R$ %.2f", v)
		},
		"dataBR": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("02/01/2006")
		},
		"percentual": func(v float64) string {
			return fmt.Sprintf("%.0f%%", v)
		},
	}
}
