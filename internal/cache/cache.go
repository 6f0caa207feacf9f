// Package cache guarda por alguns segundos as respostas de leitura mais
// marteladas (dashboard, esteira, kanban, contagem de notificações). Com
// várias abas fazendo polling de 30s, o TTL igual ao intervalo de polling
// evita repetir a mesma chamada à API sem mudar o que o usuário vê.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTLs alinhados aos intervalos de polling observados nas telas.
const (
	TTLPolling   = 30 * time.Second
	TTLDashboard = 60 * time.Second
)

type Cache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// New devolve um cache desligado (nil-safe) quando addr é vazio.
func New(addr, password string, logger *zap.Logger) *Cache {
	if addr == "" {
		return &Cache{logger: logger}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Cache{rdb: rdb, logger: logger}
}

func (c *Cache) Ativo() bool {
	return c != nil && c.rdb != nil
}

// Get desserializa em out. false quando não há entrada (ou cache desligado);
// redis fora do ar conta como cache miss, nunca como erro do usuário.
func (c *Cache) Get(ctx context.Context, chave string, out any) bool {
	if !c.Ativo() {
		return false
	}
	b, err := c.rdb.Get(ctx, chave).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache indisponível", zap.String("chave", chave), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, chave string, valor any, ttl time.Duration) {
	if !c.Ativo() {
		return
	}
	b, err := json.Marshal(valor)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, chave, b, ttl).Err(); err != nil {
		c.logger.Warn("falha ao gravar cache", zap.String("chave", chave), zap.Error(err))
	}
}

// Invalidar remove entradas após uma mutação que as tornaria obsoletas.
func (c *Cache) Invalidar(ctx context.Context, chaves ...string) {
	if !c.Ativo() || len(chaves) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, chaves...).Err()
}

func (c *Cache) Close() {
	if c.Ativo() {
		_ = c.rdb.Close()
	}
}
