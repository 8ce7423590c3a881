package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsTTL = 60 * time.Second

// Cache mémorise les statistiques par utilisateur dans Redis.
// Un cache nul est valide : toutes les opérations deviennent des no-op,
// l'application fonctionne sans Redis.
type Cache struct {
	client *redis.Client
}

// NewCache crée le client Redis à partir de l'URL de connexion.
func NewCache(ctx context.Context, redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

func statsKey(userID string) string {
	return "skillpath:stats:" + userID
}

// GetStats récupère les statistiques en cache, décodées dans dest.
// Retourne false si absent, expiré ou cache désactivé.
func (c *Cache) GetStats(ctx context.Context, userID string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetStats mémorise les statistiques de l'utilisateur.
func (c *Cache) SetStats(ctx context.Context, userID string, stats any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.client.Set(ctx, statsKey(userID), raw, statsTTL)
}

// InvalidateStats supprime l'entrée après toute mutation de roadmap.
func (c *Cache) InvalidateStats(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, statsKey(userID))
}
