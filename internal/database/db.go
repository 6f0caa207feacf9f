package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"esteira-web/internal/models"
)

var DB *gorm.DB

// Init conecta no Postgres local de auditoria. DSN vazio desliga a auditoria
// por completo (DB fica nil e RegistrarAuditoria vira no-op).
func Init(dsn string) {
	if dsn == "" {
		log.Println("auditoria local desativada (AUDIT_DB_DSN vazio)")
		return
	}

	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("conectando ao banco de auditoria (tentativa %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("banco de auditoria conectado")
			break
		}

		log.Printf("falha ao conectar: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("banco de auditoria indisponível após %d tentativas: %v", maxAttempts, err)
	}

	if err := DB.AutoMigrate(&models.RegistroAuditoria{}); err != nil {
		log.Fatalf("falha na migração da auditoria: %v", err)
	}
}
