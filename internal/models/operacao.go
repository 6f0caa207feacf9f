package models

// Discriminador das respostas de mutação da API. "blocked" é uma recusa de
// regra de negócio com motivo legível, não um erro HTTP.
const (
	OperacaoSuccess = "success"
	OperacaoBlocked = "blocked"
	OperacaoError   = "error"
)

type OperacaoResponse struct {
	Status           string         `json:"status"`
	AcaoExecutada    string         `json:"acao_executada"`
	Motivo           string         `json:"motivo,omitempty"`
	DadosAfetados    map[string]any `json:"dados_afetados,omitempty"`
	Alertas          []string       `json:"alertas,omitempty"`
	EmailsDisparados []string       `json:"emails_disparados,omitempty"`
}

func (r *OperacaoResponse) Sucesso() bool {
	return r != nil && r.Status == OperacaoSuccess
}

func (r *OperacaoResponse) Bloqueada() bool {
	return r != nil && r.Status == OperacaoBlocked
}
