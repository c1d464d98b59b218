package application

import (
	"context"
	"time"

	redisinfra "github.com/rodrigues-yn/Gestao-de-eventos/internal/infrastructure/redis"
)

// VagasCache é a visão que os serviços têm do cache de contagem de
// inscrições por evento. Leituras sem valor retornam redisinfra.ErrCacheMiss.
// Um valor nil desliga o cache; os serviços seguem funcionando sem ele.
type VagasCache interface {
	GetVagasOcupadas(ctx context.Context, eventoID string) (int, error)
	SetVagasOcupadas(ctx context.Context, eventoID string, count int, ttl time.Duration) error
	Invalidate(ctx context.Context, eventoID string) error
}

var _ VagasCache = (*redisinfra.VagasCache)(nil)
