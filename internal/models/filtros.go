package models

import (
	"time"

	"esteira-web/internal/prazo"
)

// Filtros de lista: rederivação pura sobre a coleção já buscada. Trocar o
// filtro nunca dispara novo fetch; aplicar duas vezes dá o mesmo resultado.

func FiltrarContratos(contratos []Contrato, filtro string) []Contrato {
	switch filtro {
	case "ativos":
		return filtrar(contratos, func(c Contrato) bool { return c.Status == ContratoAtivo })
	case "em-andamento":
		return filtrar(contratos, func(c Contrato) bool { return c.Status == ContratoEmAndamento })
	case "finalizados":
		return filtrar(contratos, func(c Contrato) bool { return c.Status == ContratoFinalizado })
	default:
		return contratos
	}
}

func FiltrarProjetos(projetos []Projeto, filtro string) []Projeto {
	switch filtro {
	case "pre-producao":
		return filtrar(projetos, func(p Projeto) bool {
			switch p.MacroEtapa {
			case MacroAtendimento, MacroCriacao, MacroPreparacao, MacroPreProducao:
				return true
			}
			return false
		})
	case "producao":
		return filtrar(projetos, func(p Projeto) bool { return p.MacroEtapa == MacroProducao })
	case "pos-producao":
		return filtrar(projetos, func(p Projeto) bool { return p.MacroEtapa == MacroPosVendas })
	case "risco-alto":
		return filtrar(projetos, func(p Projeto) bool { return p.Risco == RiscoAlto })
	case "concluidos":
		return filtrar(projetos, func(p Projeto) bool { return p.Encerrado() })
	default:
		return projetos
	}
}

func FiltrarTarefas(tarefas []Tarefa, filtro, usuarioNome string, agora time.Time) []Tarefa {
	switch filtro {
	case "minhas":
		return filtrar(tarefas, func(t Tarefa) bool { return t.Responsavel == usuarioNome })
	case "atrasadas":
		return filtrar(tarefas, func(t Tarefa) bool {
			return prazo.Classificar(t.Prazo, t.Status == TarefaConcluida, agora, prazo.LimiteLista) == prazo.Atrasada
		})
	case "proximas":
		return filtrar(tarefas, func(t Tarefa) bool {
			return prazo.Classificar(t.Prazo, t.Status == TarefaConcluida, agora, prazo.LimiteLista) == prazo.Proxima
		})
	case "concluidas":
		return filtrar(tarefas, func(t Tarefa) bool { return t.Status == TarefaConcluida })
	default:
		return tarefas
	}
}

func filtrar[T any](itens []T, mantem func(T) bool) []T {
	out := make([]T, 0, len(itens))
	for _, item := range itens {
		if mantem(item) {
			out = append(out, item)
		}
	}
	return out
}
