package models

import "time"

// RegistroAuditoria é o rastro local das ações de mutação disparadas por este
// painel (quem pediu o quê e qual foi o desfecho na API). O backend tem o seu
// próprio log; este existe para suporte e conferência do lado do painel.
type RegistroAuditoria struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UsuarioEmail string `gorm:"size:255"`
	Entidade     string `gorm:"size:50;not null"` // "contrato", "projeto", "tarefa", "usuario"
	EntidadeID   string `gorm:"size:64"`
	Acao         string `gorm:"size:50;not null"` // "criar", "aprovar", "mover" etc.
	Resultado    string `gorm:"size:20"`          // success / blocked / error
	Motivo       string `gorm:"type:text"`
}

func (RegistroAuditoria) TableName() string {
	return "registro_auditoria"
}
