package models

import "time"

type Role string

const (
	RoleAdministrador Role = "Administrador"
	RoleAtendimento   Role = "Atendimento"
	RoleCriacao       Role = "Criação"
	RolePreProducao   Role = "Pré-Produção"
	RoleProducao      Role = "Produção"
	RoleRevisao       Role = "Revisão de Texto"
	RoleCliente       Role = "Cliente"
)

// Chaves de permissão conhecidas pelo backend. O mapa de permissões do
// usuário pode conter outras chaves; chave ausente = negado.
const (
	PermDashboard          = "dashboard"
	PermContratosVer       = "contratos_visualizar"
	PermContratosCriar     = "contratos_criar"
	PermContratosEditar    = "contratos_editar"
	PermContratosExcluir   = "contratos_excluir"
	PermContratosAprovar   = "contratos_aprovar"
	PermContratosFinalizar = "contratos_finalizar"
	PermProjetosVer        = "projetos_visualizar"
	PermProjetosAvancar    = "projetos_avancar"
	PermTarefasVer         = "tarefas_visualizar"
	PermTarefasCriar       = "tarefas_criar"
	PermTarefasEditar      = "tarefas_editar"
	PermTarefasConcluir    = "tarefas_concluir"
	PermTarefasMover       = "tarefas_mover"
	PermAdmin              = "admin"
)

// Usuario é o perfil devolvido pela API (sem senha_hash).
type Usuario struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Email      string          `json:"email"`
	Role       Role            `json:"role"`
	Ativo      bool            `json:"ativo"`
	Permissoes map[string]bool `json:"permissoes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TemPermissao aplica a mesma regra do backend: Administrador passa em
// qualquer verificação, independente do mapa explícito.
func (u *Usuario) TemPermissao(chave string) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdministrador {
		return true
	}
	return u.Permissoes[chave]
}

// Iniciais do nome para o avatar do shell (no máximo duas letras).
func (u *Usuario) Iniciais() string {
	if u == nil || u.Nome == "" {
		return "?"
	}
	iniciais := []rune{}
	novaPalavra := true
	for _, r := range u.Nome {
		if r == ' ' {
			novaPalavra = true
			continue
		}
		if novaPalavra && len(iniciais) < 2 {
			iniciais = append(iniciais, r)
		}
		novaPalavra = false
	}
	return string(iniciais)
}

type UsuarioCreate struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Role  Role   `json:"role"`
}

// UsuarioUpdate é parcial: campo nil não é enviado.
type UsuarioUpdate struct {
	Nome       *string          `json:"nome,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Senha      *string          `json:"senha,omitempty"`
	Role       *Role            `json:"role,omitempty"`
	Ativo      *bool            `json:"ativo,omitempty"`
	Permissoes *map[string]bool `json:"permissoes,omitempty"`
}

// Token é a resposta de /auth/login e /auth/register.
type Token struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        Usuario `json:"user"`
}
