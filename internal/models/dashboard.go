package models

import (
	"encoding/json"
	"fmt"
)

type DashboardKPIs struct {
	TotalProjetos         int     `json:"total_projetos"`
	PercentualNoPrazo     float64 `json:"percentual_no_prazo"`
	ProjetosRiscoAlto     int     `json:"projetos_risco_alto"`
	ProjetosRiscoMedio    int     `json:"projetos_risco_medio"`
	TarefasAtrasadasTotal int     `json:"tarefas_atrasadas_total"`
}

type TarefaAtrasadaResumo struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	Responsavel string `json:"responsavel"`
	DiasAtraso  int    `json:"dias_atraso"`
}

// Gargalo chega como par posicional ["responsável", quantidade].
type Gargalo struct {
	Responsavel string
	Pendentes   int
}

func (g *Gargalo) UnmarshalJSON(data []byte) error {
	var par []json.RawMessage
	if err := json.Unmarshal(data, &par); err != nil {
		return err
	}
	if len(par) != 2 {
		return fmt.Errorf("gargalo: esperado par [responsavel, quantidade], veio %d itens", len(par))
	}
	if err := json.Unmarshal(par[0], &g.Responsavel); err != nil {
		return err
	}
	return json.Unmarshal(par[1], &g.Pendentes)
}

type Dashboard struct {
	Timestamp            string               `json:"timestamp"`
	KPIs                 DashboardKPIs        `json:"kpis"`
	ProjetosPorStatus    map[string]int       `json:"projetos_por_status"`
	TarefasAtrasadas     []TarefaAtrasadaResumo `json:"tarefas_atrasadas"`
	GargalosResponsaveis []Gargalo            `json:"gargalos_responsaveis"`
}

// Payload de GET /dashboard/tarefas-atrasadas.
type TarefasAtrasadas struct {
	Total          int            `json:"total"`
	PorResponsavel map[string]int `json:"por_responsavel"`
	Tarefas        []Tarefa       `json:"tarefas"`
}

// Payload de GET /dashboard/proximas-vencer.
type ProximasVencer struct {
	Total   int      `json:"total"`
	Tarefas []Tarefa `json:"tarefas"`
}
