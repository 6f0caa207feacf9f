package models

import "time"

// Tipos de notificação emitidos pelo backend.
const (
	NotifNovaTarefa      = "Nova Tarefa"
	NotifPrazoProximo    = "Prazo Próximo"
	NotifTarefaAtrasada  = "Tarefa Atrasada"
	NotifTarefaConcluida = "Tarefa Concluída"
	NotifTarefaMovida    = "Tarefa Movida"
)

type Notificacao struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Titulo    string    `json:"titulo"`
	Mensagem  string    `json:"mensagem"`
	TarefaID  string    `json:"tarefa_id,omitempty"`
	Lida      bool      `json:"lida"`
	CreatedAt time.Time `json:"created_at"`
}

// Icone usado no painel de notificações.
func (n *Notificacao) Icone() string {
	switch n.Tipo {
	case NotifNovaTarefa:
		return "📋"
	case NotifPrazoProximo:
		return "⏰"
	case NotifTarefaAtrasada:
		return "🔴"
	case NotifTarefaConcluida:
		return "✅"
	case NotifTarefaMovida:
		return "➡️"
	default:
		return "📢"
	}
}
