package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemPermissao(t *testing.T) {
	comum := &Usuario{
		Role:       RoleAtendimento,
		Permissoes: map[string]bool{PermContratosVer: true, PermContratosAprovar: false},
	}

	assert.True(t, comum.TemPermissao(PermContratosVer))
	assert.False(t, comum.TemPermissao(PermContratosAprovar))
	// chave ausente = negado
	assert.False(t, comum.TemPermissao(PermAdmin))

	// Administrador ignora o mapa explícito
	admin := &Usuario{Role: RoleAdministrador, Permissoes: map[string]bool{}}
	assert.True(t, admin.TemPermissao(PermAdmin))
	assert.True(t, admin.TemPermissao(PermContratosExcluir))

	var nenhum *Usuario
	assert.False(t, nenhum.TemPermissao(PermDashboard))
}

func TestIniciais(t *testing.T) {
	assert.Equal(t, "MS", (&Usuario{Nome: "Maria Silva"}).Iniciais())
	assert.Equal(t, "M", (&Usuario{Nome: "Maria"}).Iniciais())
	assert.Equal(t, "JP", (&Usuario{Nome: "João Pedro de Almeida"}).Iniciais())
	assert.Equal(t, "?", (&Usuario{}).Iniciais())
}
