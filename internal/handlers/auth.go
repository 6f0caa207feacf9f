package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"esteira-web/internal/apiclient"
	"esteira-web/internal/database"
	"esteira-web/internal/models"
	"esteira-web/internal/session"
)

func LoginForm(c *gin.Context) {
	if token := session.Token(c); token != "" && !session.TokenExpirado(token, time.Now()) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Email": ""})
}

func Login(c *gin.Context) {
	email := c.PostForm("email")
	senha := c.PostForm("senha")

	if email == "" || senha == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Erro":  "Informe e-mail e senha",
			"Email": email,
		})
		return
	}

	token, err := API.Login(c.Request.Context(), email, senha)
	if err != nil {
		// No login, 401 é credencial errada, não sessão caída.
		var apiErr *apiclient.ErroAPI
		if errors.Is(err, apiclient.ErrNaoAutorizado) || errors.As(err, &apiErr) {
			render(c, http.StatusUnauthorized, "login.html", gin.H{
				"Erro":  "E-mail ou senha inválidos",
				"Email": email,
			})
			return
		}
		Log.Error("login indisponível", zap.Error(err))
		render(c, http.StatusBadGateway, "login.html", gin.H{
			"Erro":  "Não foi possível falar com o servidor. Tente novamente.",
			"Email": email,
		})
		return
	}

	if err := session.Salvar(c, token.AccessToken, &token.User); err != nil {
		Log.Error("falha ao gravar sessão", zap.Error(err))
		render(c, http.StatusInternalServerError, "login.html", gin.H{
			"Erro":  "Falha ao iniciar a sessão",
			"Email": email,
		})
		return
	}

	database.RegistrarAuditoria(token.User.Email, "sessao", token.User.ID, "login", "success", "")
	c.Redirect(http.StatusFound, "/dashboard")
}

func RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Nome": "", "Email": ""})
}

func Register(c *gin.Context) {
	nome := c.PostForm("nome")
	email := c.PostForm("email")
	senha := c.PostForm("senha")
	confirmar := c.PostForm("confirmar_senha")

	reexibir := func(status int, erro string) {
		render(c, status, "register.html", gin.H{
			"Erro":  erro,
			"Nome":  nome,
			"Email": email,
		})
	}

	switch {
	case nome == "" || email == "" || senha == "":
		reexibir(http.StatusBadRequest, "Preencha todos os campos")
		return
	case len(senha) < 6:
		reexibir(http.StatusBadRequest, "A senha precisa de pelo menos 6 caracteres")
		return
	case senha != confirmar:
		reexibir(http.StatusBadRequest, "As senhas não conferem")
		return
	}

	token, err := API.Register(c.Request.Context(), models.UsuarioCreate{
		Nome:  nome,
		Email: email,
		Senha: senha,
		Role:  models.RoleAtendimento,
	})
	if err != nil {
		var apiErr *apiclient.ErroAPI
		if errors.As(err, &apiErr) {
			reexibir(http.StatusBadRequest, apiErr.Detail)
			return
		}
		Log.Error("registro indisponível", zap.Error(err))
		reexibir(http.StatusBadGateway, "Não foi possível falar com o servidor. Tente novamente.")
		return
	}

	if err := session.Salvar(c, token.AccessToken, &token.User); err != nil {
		Log.Error("falha ao gravar sessão", zap.Error(err))
		reexibir(http.StatusInternalServerError, "Falha ao iniciar a sessão")
		return
	}

	database.RegistrarAuditoria(token.User.Email, "sessao", token.User.ID, "register", "success", "")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout limpa token e perfil de uma vez. Sem logout parcial.
func Logout(c *gin.Context) {
	email := usuarioEmail(c)
	session.Limpar(c)
	database.RegistrarAuditoria(email, "sessao", "", "logout", "success", "")
	c.Redirect(http.StatusFound, "/login")
}
