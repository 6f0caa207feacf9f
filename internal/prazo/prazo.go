// Package prazo concentra o cálculo de status derivado de prazos: dias
// restantes, classificação (atrasada/próxima/no prazo) e os textos exibidos.
// Tudo é função pura de (prazo, estado, agora); o relógio entra por parâmetro
// e cada render reavalia contra o agora corrente, sem cache.
package prazo

import (
	"fmt"
	"math"
	"time"
)

type Situacao string

const (
	Concluida Situacao = "concluida"
	Atrasada  Situacao = "atrasada"
	Proxima   Situacao = "proxima"
	NoPrazo   Situacao = "normal"
)

// Limites de "próxima a vencer" observados por tela. Não existe um limite
// universal: cada view recebe o seu.
const (
	LimiteLista     = 1 // lista de tarefas
	LimiteKanban    = 3 // cartões do kanban e lista de projetos
	LimiteDashboard = 7 // painel gerencial
)

// DiasRestantes = ceil((prazo - agora) / 24h). Negativo significa atraso.
func DiasRestantes(prazo, agora time.Time) int {
	diff := prazo.Sub(agora)
	return int(math.Ceil(diff.Hours() / 24))
}

// Classificar decide a situação exibida. Estado concluído vence qualquer
// data; fora isso a régua é dias restantes contra o limite da view.
func Classificar(prazo time.Time, concluida bool, agora time.Time, limiteProximo int) Situacao {
	if concluida {
		return Concluida
	}
	dias := DiasRestantes(prazo, agora)
	switch {
	case dias < 0:
		return Atrasada
	case dias <= limiteProximo:
		return Proxima
	default:
		return NoPrazo
	}
}

// TextoPrazo é o texto da lista de tarefas ("4 dias de atraso", "Vence hoje!").
func TextoPrazo(prazo, agora time.Time) string {
	dias := DiasRestantes(prazo, agora)
	switch {
	case dias < 0:
		return fmt.Sprintf("%d dias de atraso", -dias)
	case dias == 0:
		return "Vence hoje!"
	case dias == 1:
		return "Vence amanhã!"
	default:
		return fmt.Sprintf("%d dias restantes", dias)
	}
}

// TextoEntrega é a variante da esteira de projetos, com alerta de urgência
// até 3 dias da entrega.
func TextoEntrega(entrega, agora time.Time) string {
	if entrega.IsZero() {
		return "Não definido"
	}
	dias := DiasRestantes(entrega, agora)
	switch {
	case dias < 0:
		return fmt.Sprintf("%d dias de atraso", -dias)
	case dias == 0:
		return "Entrega hoje!"
	case dias <= 3:
		return fmt.Sprintf("%d dias (urgente!)", dias)
	default:
		return fmt.Sprintf("%d dias", dias)
	}
}

// TempoRelativo formata o carimbo das notificações.
func TempoRelativo(t, agora time.Time) string {
	diff := agora.Sub(t)
	mins := int(diff.Minutes())
	horas := int(diff.Hours())
	dias := horas / 24
	switch {
	case mins < 1:
		return "Agora"
	case mins < 60:
		return fmt.Sprintf("%dm atrás", mins)
	case horas < 24:
		return fmt.Sprintf("%dh atrás", horas)
	case dias == 1:
		return "Ontem"
	case dias < 7:
		return fmt.Sprintf("%dd atrás", dias)
	default:
		return t.Format("02/01/2006")
	}
}
