package database

import "esteira-web/internal/models"

// RegistrarAuditoria grava o rastro de uma mutação pedida à API. Fire and
// forget: auditoria nunca derruba a ação do usuário.
func RegistrarAuditoria(usuarioEmail, entidade, entidadeID, acao, resultado, motivo string) {
	if DB == nil {
		return
	}
	registro := models.RegistroAuditoria{
		UsuarioEmail: usuarioEmail,
		Entidade:     entidade,
		EntidadeID:   entidadeID,
		Acao:         acao,
		Resultado:    resultado,
		Motivo:       motivo,
	}
	_ = DB.Create(&registro).Error
}

// ListarAuditoria devolve os registros mais recentes para a página de
// auditoria (admin).
func ListarAuditoria(limite int) ([]models.RegistroAuditoria, error) {
	if DB == nil {
		return nil, nil
	}
	var registros []models.RegistroAuditoria
	err := DB.Order("created_at desc").Limit(limite).Find(&registros).Error
	return registros, err
}
