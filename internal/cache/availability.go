package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
)

// Cache de leitura da visão de disponibilidade por estúdio. Toda
// mutação de bloco invalida a chave inteira do estúdio — simples e
// suficiente para o volume do painel admin.

const availabilityTTL = 5 * time.Minute

type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func key(studioID uint) string {
	return fmt.Sprintf("availability:studio:%d", studioID)
}

func (c *AvailabilityCache) Get(ctx context.Context, studioID uint) ([]domain.StaffAvailability, bool) {
	raw, err := c.rdb.Get(ctx, key(studioID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("availability cache get:", err)
		}
		return nil, false
	}

	var out []domain.StaffAvailability
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}

	return out, true
}

func (c *AvailabilityCache) Set(ctx context.Context, studioID uint, data []domain.StaffAvailability) {
	b, err := json.Marshal(data)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(studioID), b, availabilityTTL).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, studioID uint) {
	if err := c.rdb.Del(ctx, key(studioID)).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
