package models

// Etapas numeradas da esteira de produção. Os rótulos são os valores que o
// backend grava em etapa_atual/etapa e que o mover espera em nova_etapa.
const (
	EtapaLancamento     = "1 - Lançamento do Contrato"
	EtapaAtivacao       = "2 - Ativação do Projeto"
	EtapaRevisaoTexto   = "3 - Revisão de Texto / Preparação das Fotos"
	EtapaCriacao12      = "4 - Criação (1ª e 2ª AP)"
	EtapaConferencia    = "5 - Conferência do Layout"
	EtapaAjusteLayout   = "5.1 - Ajuste Layout"
	EtapaCriacao34      = "6 - Criação (3ª e 4ª AP)"
	EtapaAprovacaoFinal = "7 - Aprovação Final (Criação)"
	EtapaPlanejamento   = "8 - Planejamento de Produção"
	EtapaPreProducao    = "9 - Pré-Produção"
	EtapaProducao       = "10 - Produção"
	EtapaQualidade      = "11 - Qualidade"
	EtapaEntrega        = "12 - Entrega"
	EtapaPosVendas      = "13 - Pós-Vendas"
	EtapaEncerrado      = "14 - Contrato Encerrado"
)

// Coluna especial do Kanban: soltar aqui conclui a tarefa em vez de movê-la.
const ColunaConcluido = "CONCLUIDO"

// ColunaDef é a tabela única coluna→etapa compartilhada por todas as views
// que desenham ou movem cartões (antes cada tela duplicava o mapa).
type ColunaDef struct {
	ID     string
	Titulo string
	Cor    string
	Etapa  string // etapa alvo de um mover para esta coluna
}

var ColunasKanban = []ColunaDef{
	{ID: "LANCAMENTO", Titulo: "Lançamento", Cor: "#6366f1", Etapa: EtapaLancamento},
	{ID: "ATIVACAO", Titulo: "Ativação", Cor: "#8b5cf6", Etapa: EtapaAtivacao},
	{ID: "REVISAO", Titulo: "Revisão/Preparação", Cor: "#ec4899", Etapa: EtapaRevisaoTexto},
	{ID: "CRIACAO_1_2", Titulo: "Criação (1ª/2ª)", Cor: "#f59e0b", Etapa: EtapaCriacao12},
	{ID: "CRIACAO_3_4", Titulo: "Criação (3ª/4ª)", Cor: "#f97316", Etapa: EtapaCriacao34},
	{ID: "APROVACAO", Titulo: "Aprovação Final", Cor: "#10b981", Etapa: EtapaAprovacaoFinal},
	{ID: "PLANEJAMENTO", Titulo: "Planejamento", Cor: "#3b82f6", Etapa: EtapaPlanejamento},
	{ID: "PRE_PRODUCAO", Titulo: "Pré-Produção", Cor: "#06b6d4", Etapa: EtapaPreProducao},
	{ID: "PRODUCAO", Titulo: "Produção", Cor: "#14b8a6", Etapa: EtapaProducao},
	{ID: ColunaConcluido, Titulo: "Concluído", Cor: "#22c55e"},
}

var ColunasEsteira = []ColunaDef{
	{ID: "PRE_PRODUCAO", Titulo: "Pré-Produção", Cor: "#3b82f6"},
	{ID: "PRODUCAO", Titulo: "Produção", Cor: "#f59e0b"},
	{ID: "POS_PRODUCAO", Titulo: "Pós-Produção", Cor: "#10b981"},
}

// EtapaDaColuna resolve a etapa alvo de um mover. A coluna CONCLUIDO não tem
// etapa: vira conclusão, não movimentação.
func EtapaDaColuna(colunaID string) (string, bool) {
	for _, c := range ColunasKanban {
		if c.ID == colunaID && c.Etapa != "" {
			return c.Etapa, true
		}
	}
	return "", false
}

func ColunaKanbanValida(colunaID string) bool {
	for _, c := range ColunasKanban {
		if c.ID == colunaID {
			return true
		}
	}
	return false
}

// Payload de GET /tarefas/kanban/{projetoId}: mapa coluna→conteúdo. A ordem
// de exibição vem de ColunasKanban (mapas JSON não têm ordem).
type ColunaKanban struct {
	Titulo  string   `json:"titulo"`
	Cor     string   `json:"cor"`
	Tarefas []Tarefa `json:"tarefas"`
}

// Payload de GET /projetos/esteira/visualizacao.
type ColunaEsteira struct {
	Titulo   string    `json:"titulo"`
	Cor      string    `json:"cor"`
	Projetos []Projeto `json:"projetos"`
}
