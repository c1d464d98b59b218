package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss = errors.New("valor não encontrado no cache")
)

// VagasCache guarda a contagem de vagas ocupadas por evento.
// Toda escrita de inscrição invalida a chave do evento correspondente.
type VagasCache struct {
	client *redis.Client
}

// NewVagasCache cria um VagasCache.
func NewVagasCache(client *redis.Client) *VagasCache {
	return &VagasCache{client: client}
}

// GetVagasOcupadas busca no cache a contagem de inscrições do evento.
func (c *VagasCache) GetVagasOcupadas(ctx context.Context, eventoID string) (int, error) {
	key := c.vagasOcupadasKey(eventoID)
	val, err := c.client.Get(ctx, key).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("erro ao ler cache: %w", err)
	}
	return val, nil
}

// SetVagasOcupadas grava no cache a contagem de inscrições do evento.
func (c *VagasCache) SetVagasOcupadas(ctx context.Context, eventoID string, count int, ttl time.Duration) error {
	key := c.vagasOcupadasKey(eventoID)
	err := c.client.Set(ctx, key, count, ttl).Err()
	if err != nil {
		return fmt.Errorf("erro ao gravar cache: %w", err)
	}
	return nil
}

// Invalidate remove a contagem do evento do cache.
func (c *VagasCache) Invalidate(ctx context.Context, eventoID string) error {
	key := c.vagasOcupadasKey(eventoID)
	err := c.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("erro ao invalidar cache: %w", err)
	}
	return nil
}

func (c *VagasCache) vagasOcupadasKey(eventoID string) string {
	return fmt.Sprintf("vagas:ocupadas:%s", eventoID)
}
