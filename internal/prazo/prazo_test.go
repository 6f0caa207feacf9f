package prazo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dia(ano, mes, d int) time.Time {
	return time.Date(ano, time.Month(mes), d, 12, 0, 0, 0, time.UTC)
}

func TestDiasRestantes(t *testing.T) {
	agora := dia(2025, 1, 5)

	assert.Equal(t, -4, DiasRestantes(dia(2025, 1, 1), agora))
	assert.Equal(t, 0, DiasRestantes(dia(2025, 1, 5), agora))
	assert.Equal(t, 1, DiasRestantes(dia(2025, 1, 6), agora))
	assert.Equal(t, 7, DiasRestantes(dia(2025, 1, 12), agora))
}

func TestClassificar(t *testing.T) {
	agora := dia(2025, 1, 5)

	// concluída vence qualquer data, inclusive prazo estourado
	assert.Equal(t, Concluida, Classificar(dia(2025, 1, 1), true, agora, LimiteLista))

	assert.Equal(t, Atrasada, Classificar(dia(2025, 1, 1), false, agora, LimiteLista))
	assert.Equal(t, Proxima, Classificar(dia(2025, 1, 5), false, agora, LimiteLista))
	assert.Equal(t, Proxima, Classificar(dia(2025, 1, 6), false, agora, LimiteLista))
	assert.Equal(t, NoPrazo, Classificar(dia(2025, 1, 7), false, agora, LimiteLista))

	// o limite muda por tela: 3 dias ainda é "próxima" no kanban
	assert.Equal(t, NoPrazo, Classificar(dia(2025, 1, 8), false, agora, LimiteLista))
	assert.Equal(t, Proxima, Classificar(dia(2025, 1, 8), false, agora, LimiteKanban))
	assert.Equal(t, Proxima, Classificar(dia(2025, 1, 12), false, agora, LimiteDashboard))
}

func TestTextoPrazo(t *testing.T) {
	agora := dia(2025, 1, 5)

	assert.Equal(t, "4 dias de atraso", TextoPrazo(dia(2025, 1, 1), agora))
	assert.Equal(t, "Vence hoje!", TextoPrazo(dia(2025, 1, 5), agora))
	assert.Equal(t, "Vence amanhã!", TextoPrazo(dia(2025, 1, 6), agora))
	assert.Equal(t, "3 dias restantes", TextoPrazo(dia(2025, 1, 8), agora))
}

func TestTextoEntrega(t *testing.T) {
	agora := dia(2025, 1, 5)

	assert.Equal(t, "Não definido", TextoEntrega(time.Time{}, agora))
	assert.Equal(t, "2 dias de atraso", TextoEntrega(dia(2025, 1, 3), agora))
	assert.Equal(t, "Entrega hoje!", TextoEntrega(dia(2025, 1, 5), agora))
	assert.Equal(t, "3 dias (urgente!)", TextoEntrega(dia(2025, 1, 8), agora))
	assert.Equal(t, "10 dias", TextoEntrega(dia(2025, 1, 15), agora))
}

func TestTempoRelativo(t *testing.T) {
	agora := dia(2025, 1, 5)

	assert.Equal(t, "Agora", TempoRelativo(agora.Add(-30*time.Second), agora))
	assert.Equal(t, "5m atrás", TempoRelativo(agora.Add(-5*time.Minute), agora))
	assert.Equal(t, "3h atrás", TempoRelativo(agora.Add(-3*time.Hour), agora))
	assert.Equal(t, "Ontem", TempoRelativo(agora.Add(-30*time.Hour), agora))
	assert.Equal(t, "3d atrás", TempoRelativo(agora.Add(-72*time.Hour), agora))
	assert.Equal(t, "20/12/2024", TempoRelativo(dia(2024, 12, 20), agora))
}
