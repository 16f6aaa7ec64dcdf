package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a Redis-backed read cache for catalog listings. It is
// constructed by the composition root and injected; when no Redis URL is
// configured every operation is a cheap no-op. Entitlement checks must
// never go through it.
type Cache struct {
	client *redis.Client
}

// New connects to Redis if redisURL is set. Connection failures disable
// caching rather than failing startup.
func New(redisURL string) *Cache {
	if redisURL == "" {
		log.Println("Redis URL not provided, catalog caching disabled")
		return &Cache{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v, catalog caching disabled", err)
		return &Cache{}
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v, catalog caching disabled", err)
		return &Cache{}
	}

	log.Println("Redis cache initialized successfully")
	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) Close() {
	if c.Enabled() {
		c.client.Close()
	}
}

// Get unmarshals the cached value into dest; redis.Nil signals a miss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.Enabled() {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
