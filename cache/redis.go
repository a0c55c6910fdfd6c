// Package cache provides an optional Redis-backed read cache for post
// listings. A nil *Cache is valid and disables caching, so the service runs
// unchanged when Redis is absent.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muskanbandta23/socialmedia/models"
)

// generationKey is bumped on every post mutation. Listing cache keys embed
// the current generation, so entries cached before a mutation can never be
// served after it; the TTL only bounds Redis memory.
const generationKey = "posts:gen"

// DefaultTTL bounds how long an unreferenced listing entry stays in Redis.
const DefaultTTL = time.Minute

// Cache wraps a Redis client. All methods are best-effort: a cache failure
// degrades to a miss and never fails the request.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr. On connection failure it logs a warning and
// returns nil, which disables caching.
func New(addr string) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		return nil
	}
	log.Println("Redis connected successfully")
	return &Cache{client: client, ttl: DefaultTTL}
}

// NewWithClient wraps an existing client, letting tests supply miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetPosts returns the cached listing for requesterID at the current
// generation, along with the generation it observed. ok is false on a miss,
// a cache error or a disabled cache; on a miss the caller passes the
// observed generation back to SetPosts after reading the collection.
func (c *Cache) GetPosts(ctx context.Context, requesterID string) ([]models.Post, int64, bool) {
	if c == nil {
		return nil, 0, false
	}
	gen := c.generation(ctx)
	data, err := c.client.Get(ctx, listKey(gen, requesterID)).Result()
	if err != nil {
		return nil, gen, false
	}
	var posts []models.Post
	if err := json.Unmarshal([]byte(data), &posts); err != nil {
		return nil, gen, false
	}
	return posts, gen, true
}

// SetPosts stores the listing best-effort under the generation observed
// before the collection was read. A listing computed before a mutation's
// bump lands under the superseded key, so it can never be served as
// current.
func (c *Cache) SetPosts(ctx context.Context, requesterID string, gen int64, posts []models.Post) {
	if c == nil {
		return
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, listKey(gen, requesterID), data, c.ttl).Err()
}

// InvalidatePosts bumps the generation counter so every listing cached
// before the mutation misses from now on.
func (c *Cache) InvalidatePosts(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.client.Incr(ctx, generationKey).Err()
}

func (c *Cache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		return 0
	}
	return gen
}

func listKey(gen int64, requesterID string) string {
	return fmt.Sprintf("posts:g%d:%s", gen, requesterID)
}
