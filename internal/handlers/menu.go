package handlers

import "esteira-web/internal/models"

// ItemMenu é uma entrada da barra lateral.
type ItemMenu struct {
	Rota      string
	Rotulo    string
	Icone     string
	Permissao string
}

// Entradas na ordem em que aparecem na barra. Permissao vazia = sempre
// visível para quem está logado.
var itensMenu = []ItemMenu{
	{Rota: "/dashboard", Rotulo: "Dashboard", Icone: "📊", Permissao: models.PermDashboard},
	{Rota: "/contratos", Rotulo: "Contratos", Icone: "📄", Permissao: models.PermContratosVer},
	{Rota: "/projetos", Rotulo: "Projetos", Icone: "📁", Permissao: models.PermProjetosVer},
	{Rota: "/esteira", Rotulo: "Esteira", Icone: "🏭", Permissao: models.PermProjetosVer},
	{Rota: "/tarefas", Rotulo: "Tarefas", Icone: "✅", Permissao: models.PermTarefasVer},
	{Rota: "/notificacoes", Rotulo: "Notificações", Icone: "🔔"},
	{Rota: "/admin/usuarios", Rotulo: "Usuários", Icone: "👥", Permissao: models.PermAdmin},
	{Rota: "/admin/auditoria", Rotulo: "Auditoria", Icone: "🧾", Permissao: models.PermAdmin},
}

// MontarMenu filtra as entradas pelo mapa de permissões do usuário.
// Administrador enxerga tudo (regra do TemPermissao).
func MontarMenu(u *models.Usuario) []ItemMenu {
	if u == nil {
		return nil
	}
	menu := make([]ItemMenu, 0, len(itensMenu))
	for _, item := range itensMenu {
		if item.Permissao == "" || u.TemPermissao(item.Permissao) {
			menu = append(menu, item)
		}
	}
	return menu
}
