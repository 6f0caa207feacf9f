package models

import "time"

type TarefaStatus string

const (
	TarefaPendente    TarefaStatus = "Pendente"
	TarefaEmAndamento TarefaStatus = "Em Andamento"
	TarefaAguardando  TarefaStatus = "Aguardando"
	TarefaConcluida   TarefaStatus = "Concluído"
	TarefaAtrasada    TarefaStatus = "Atrasado"
)

type Tarefa struct {
	ID            string       `json:"id"`
	ProjetoID     string       `json:"projeto_id"`
	Etapa         string       `json:"etapa"`
	MacroEtapa    MacroEtapa   `json:"macro_etapa"`
	Numero        int          `json:"numero"`
	Atividade     string       `json:"atividade"`
	Setor         string       `json:"setor"`
	Titulo        string       `json:"titulo"`
	Descricao     string       `json:"descricao,omitempty"`
	Responsavel   string       `json:"responsavel"`
	Prazo         time.Time    `json:"prazo"`
	DataConclusao *time.Time   `json:"data_conclusao,omitempty"`
	Status        TarefaStatus `json:"status"`
	Dependencias  []string     `json:"dependencias,omitempty"`
	Critica       bool         `json:"critica"`
	Observacao    string       `json:"observacao,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// TarefaUpdate é parcial (PUT /tarefas/{id}): só vai o que mudou.
type TarefaUpdate struct {
	Titulo        *string       `json:"titulo,omitempty"`
	Descricao     *string       `json:"descricao,omitempty"`
	Responsavel   *string       `json:"responsavel,omitempty"`
	Prazo         *time.Time    `json:"prazo,omitempty"`
	Status        *TarefaStatus `json:"status,omitempty"`
	DataConclusao *time.Time    `json:"data_conclusao,omitempty"`
	Observacao    *string       `json:"observacao,omitempty"`
}
