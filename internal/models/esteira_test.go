package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEtapaDaColuna(t *testing.T) {
	etapa, ok := EtapaDaColuna("LANCAMENTO")
	assert.True(t, ok)
	assert.Equal(t, EtapaLancamento, etapa)

	etapa, ok = EtapaDaColuna("PRODUCAO")
	assert.True(t, ok)
	assert.Equal(t, EtapaProducao, etapa)

	// CONCLUIDO não mapeia etapa: o drop vira conclusão
	_, ok = EtapaDaColuna(ColunaConcluido)
	assert.False(t, ok)

	_, ok = EtapaDaColuna("COLUNA_INVENTADA")
	assert.False(t, ok)
}

func TestColunaKanbanValida(t *testing.T) {
	assert.True(t, ColunaKanbanValida("CRIACAO_1_2"))
	assert.True(t, ColunaKanbanValida(ColunaConcluido))
	assert.False(t, ColunaKanbanValida(""))
	assert.False(t, ColunaKanbanValida("QUALQUER"))
}

func TestOrdemColunasKanban(t *testing.T) {
	// a ordem de exibição é fixa; Concluído fecha o quadro
	assert.Equal(t, "LANCAMENTO", ColunasKanban[0].ID)
	assert.Equal(t, ColunaConcluido, ColunasKanban[len(ColunasKanban)-1].ID)
}
