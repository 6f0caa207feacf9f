// Package session guarda o estado de autenticação no cookie de sessão: o
// bearer token e o perfil serializado do usuário. Escrita só em login/logout;
// todo o resto apenas lê.
package session

import (
	"encoding/json"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"esteira-web/internal/models"
)

const (
	chaveToken   = "token"
	chaveUsuario = "usuario"

	flashSucesso = "sucesso"
	flashErro    = "erro"
)

// Salvar grava token e perfil na sessão (único ponto de escrita junto com
// Limpar).
func Salvar(c *gin.Context, token string, u *models.Usuario) error {
	perfil, err := json.Marshal(u)
	if err != nil {
		return err
	}
	sess := sessions.Default(c)
	sess.Set(chaveToken, token)
	sess.Set(chaveUsuario, string(perfil))
	return sess.Save()
}

// AtualizarUsuario renova só o perfil em cache (após GET /auth/me).
func AtualizarUsuario(c *gin.Context, u *models.Usuario) error {
	perfil, err := json.Marshal(u)
	if err != nil {
		return err
	}
	sess := sessions.Default(c)
	sess.Set(chaveUsuario, string(perfil))
	return sess.Save()
}

func Token(c *gin.Context) string {
	sess := sessions.Default(c)
	token, _ := sess.Get(chaveToken).(string)
	return token
}

// UsuarioAtual desserializa o perfil em cache. nil quando não há sessão.
func UsuarioAtual(c *gin.Context) *models.Usuario {
	sess := sessions.Default(c)
	raw, ok := sess.Get(chaveUsuario).(string)
	if !ok || raw == "" {
		return nil
	}
	var u models.Usuario
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

// Limpar derruba token e perfil de uma vez (logout ou 401 da API).
func Limpar(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
}

// TokenExpirado inspeciona o exp do JWT sem validar assinatura (a chave é do
// backend). Evita uma ida à API com token já vencido. Token ilegível conta
// como expirado.
func TokenExpirado(token string, agora time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(agora)
}

// Avisos transitórios exibidos uma única vez na próxima página.

func FlashSucesso(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, flashSucesso)
	_ = sess.Save()
}

func FlashErro(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, flashErro)
	_ = sess.Save()
}

// Flashes consome e devolve os avisos pendentes (sucessos, erros).
func Flashes(c *gin.Context) (sucessos, erros []string) {
	sess := sessions.Default(c)
	for _, f := range sess.Flashes(flashSucesso) {
		if s, ok := f.(string); ok {
			sucessos = append(sucessos, s)
		}
	}
	for _, f := range sess.Flashes(flashErro) {
		if s, ok := f.(string); ok {
			erros = append(erros, s)
		}
	}
	_ = sess.Save()
	return sucessos, erros
}
