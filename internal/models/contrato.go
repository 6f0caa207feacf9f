package models

import "time"

type ContratoStatus string

const (
	ContratoAtivo       ContratoStatus = "Ativo"
	ContratoEmAndamento ContratoStatus = "Em Andamento"
	ContratoFinalizado  ContratoStatus = "Finalizado"
	ContratoEncerrado   ContratoStatus = "Encerrado"
)

type Contrato struct {
	ID             string         `json:"id"`
	NumeroContrato int            `json:"numero_contrato"`
	Cliente        string         `json:"cliente"`
	Faculdade      string         `json:"faculdade"`
	Semestre       string         `json:"semestre"` // ex: "2025/1"
	Valor          float64        `json:"valor"`
	DataInicio     time.Time      `json:"data_inicio"`
	DataFim        time.Time      `json:"data_fim"`
	Status         ContratoStatus `json:"status"`
	ProjetoID      string         `json:"projeto_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ContratoCreate é o corpo de POST /contratos. O formulário entrega strings;
// a conversão para int/float acontece no handler antes do envio.
type ContratoCreate struct {
	NumeroContrato int       `json:"numero_contrato"`
	Cliente        string    `json:"cliente"`
	Faculdade      string    `json:"faculdade"`
	Semestre       string    `json:"semestre"`
	Valor          float64   `json:"valor"`
	DataInicio     time.Time `json:"data_inicio"`
	DataFim        time.Time `json:"data_fim"`
}

type ContratoUpdate struct {
	Cliente    *string         `json:"cliente,omitempty"`
	Faculdade  *string         `json:"faculdade,omitempty"`
	Semestre   *string         `json:"semestre,omitempty"`
	Valor      *float64        `json:"valor,omitempty"`
	DataInicio *time.Time      `json:"data_inicio,omitempty"`
	DataFim    *time.Time      `json:"data_fim,omitempty"`
	Status     *ContratoStatus `json:"status,omitempty"`
}
