package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"esteira-web/internal/apiclient"
	"esteira-web/internal/database"
	"esteira-web/internal/models"
	"esteira-web/internal/session"
)

// Permissões exibidas como checkboxes no formulário de usuário, na ordem da
// tela.
var permissoesEditaveis = []struct {
	Chave  string
	Rotulo string
}{
	{models.PermDashboard, "Ver dashboard"},
	{models.PermContratosVer, "Ver contratos"},
	{models.PermContratosCriar, "Criar contratos"},
	{models.PermContratosEditar, "Editar contratos"},
	{models.PermContratosExcluir, "Excluir contratos"},
	{models.PermContratosAprovar, "Aprovar contratos"},
	{models.PermContratosFinalizar, "Finalizar contratos"},
	{models.PermProjetosVer, "Ver projetos"},
	{models.PermProjetosAvancar, "Avançar projetos"},
	{models.PermTarefasVer, "Ver tarefas"},
	{models.PermTarefasCriar, "Criar tarefas"},
	{models.PermTarefasEditar, "Editar tarefas"},
	{models.PermTarefasConcluir, "Concluir tarefas"},
	{models.PermTarefasMover, "Mover tarefas"},
	{models.PermAdmin, "Administração"},
}

var rolesDisponiveis = []models.Role{
	models.RoleAdministrador,
	models.RoleAtendimento,
	models.RoleCriacao,
	models.RolePreProducao,
	models.RoleProducao,
	models.RoleRevisao,
	models.RoleCliente,
}

func ListarUsuarios(c *gin.Context) {
	usuarios, err := API.ListarUsuarios(c.Request.Context(), session.Token(c))
	if err != nil {
		falhaAPI(c, err, "Não foi possível carregar os usuários", "/dashboard")
		return
	}
	render(c, http.StatusOK, "admin_usuarios.html", gin.H{
		"Usuarios":   usuarios,
		"Roles":      rolesDisponiveis,
		"Permissoes": permissoesEditaveis,
	})
}

func CriarUsuario(c *gin.Context) {
	nome := c.PostForm("nome")
	email := c.PostForm("email")
	senha := c.PostForm("senha")
	role := models.Role(c.PostForm("role"))

	if nome == "" || email == "" || senha == "" {
		session.FlashErro(c, "Preencha nome, e-mail e senha")
		c.Redirect(http.StatusFound, "/admin/usuarios")
		return
	}

	err := API.CriarUsuario(c.Request.Context(), session.Token(c), models.UsuarioCreate{
		Nome:  nome,
		Email: email,
		Senha: senha,
		Role:  role,
	})
	if err != nil {
		tratarErroAdmin(c, err, "Não foi possível criar o usuário")
		return
	}

	database.RegistrarAuditoria(usuarioEmail(c), "usuario", email, "criar", "success", "")
	session.FlashSucesso(c, "Usuário criado")
	c.Redirect(http.StatusFound, "/admin/usuarios")
}

// AtualizarUsuario salva role, ativo e o mapa de permissões marcado nos
// checkboxes. Checkbox desmarcado não chega no form, então o mapa é
// reconstruído inteiro a cada salvamento.
func AtualizarUsuario(c *gin.Context) {
	id := c.Param("id")

	permissoes := make(map[string]bool, len(permissoesEditaveis))
	for _, p := range permissoesEditaveis {
		permissoes[p.Chave] = c.PostForm("perm_"+p.Chave) == "on"
	}
	role := models.Role(c.PostForm("role"))
	ativo := c.PostForm("ativo") == "on"

	upd := models.UsuarioUpdate{
		Role:       &role,
		Ativo:      &ativo,
		Permissoes: &permissoes,
	}
	if senha := c.PostForm("senha"); senha != "" {
		upd.Senha = &senha
	}

	if err := API.AtualizarUsuario(c.Request.Context(), session.Token(c), id, upd); err != nil {
		tratarErroAdmin(c, err, "Não foi possível salvar o usuário")
		return
	}

	database.RegistrarAuditoria(usuarioEmail(c), "usuario", id, "editar", "success", "")
	session.FlashSucesso(c, "Usuário atualizado")
	c.Redirect(http.StatusFound, "/admin/usuarios")
}

func ExcluirUsuario(c *gin.Context) {
	id := c.Param("id")
	if err := API.ExcluirUsuario(c.Request.Context(), session.Token(c), id); err != nil {
		tratarErroAdmin(c, err, "Não foi possível excluir o usuário")
		return
	}
	database.RegistrarAuditoria(usuarioEmail(c), "usuario", id, "excluir", "success", "")
	session.FlashSucesso(c, "Usuário excluído")
	c.Redirect(http.StatusFound, "/admin/usuarios")
}

// tratarErroAdmin mostra o detail da API (e-mail duplicado, último admin)
// quando houver; o resto cai no tratamento padrão.
func tratarErroAdmin(c *gin.Context, err error, msg string) {
	var apiErr *apiclient.ErroAPI
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		session.FlashErro(c, apiErr.Detail)
		c.Redirect(http.StatusFound, "/admin/usuarios")
		return
	}
	falhaAPI(c, err, msg, "/admin/usuarios")
}
