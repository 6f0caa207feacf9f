package models

import (
	"strings"
	"time"
)

type MacroEtapa string

const (
	MacroAtendimento MacroEtapa = "Atendimento"
	MacroCliente     MacroEtapa = "Cliente"
	MacroPreparacao  MacroEtapa = "Preparação"
	MacroCriacao     MacroEtapa = "Criação"
	MacroPreProducao MacroEtapa = "Pré-Produção"
	MacroProducao    MacroEtapa = "Produção"
	MacroPosVendas   MacroEtapa = "Pós-Vendas"
)

type NivelRisco string

const (
	RiscoBaixo NivelRisco = "Baixo"
	RiscoMedio NivelRisco = "Médio"
	RiscoAlto  NivelRisco = "Alto"
)

// Projeto como devolvido pela API. Cliente/faculdade/número vêm
// desnormalizados do contrato nas listagens enriquecidas.
type Projeto struct {
	ID                     string     `json:"id"`
	ContratoID             string     `json:"contrato_id"`
	EtapaAtual             string     `json:"etapa_atual"`
	MacroEtapa             MacroEtapa `json:"macro_etapa"`
	Progresso              float64    `json:"progresso"`
	Risco                  NivelRisco `json:"risco"`
	DataEntrega            time.Time  `json:"data_entrega"`
	ResponsavelAtendimento string     `json:"responsavel_atendimento"`
	ResponsavelDesigner    string     `json:"responsavel_designer"`
	CreatedAt              time.Time  `json:"created_at"`

	Cliente        string  `json:"cliente,omitempty"`
	Faculdade      string  `json:"faculdade,omitempty"`
	NumeroContrato int     `json:"numero_contrato,omitempty"`
	Valor          float64 `json:"valor,omitempty"`
}

// Encerrado indica o estado terminal ("14 - Contrato Encerrado").
func (p *Projeto) Encerrado() bool {
	return strings.Contains(p.EtapaAtual, "Encerrado")
}
