package sitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// searchCache keeps recent search results in redis. The cache is strictly
// an accelerator: every failure path degrades to the database query.
type searchCache struct {
	client *redis.Client
	ttl    time.Duration
}

type cachedSearch struct {
	Profiles []*Profile `json:"profiles"`
	Total    int        `json:"total"`
}

func newSearchCache(client *redis.Client, ttl time.Duration) *searchCache {
	return &searchCache{client: client, ttl: ttl}
}

func (c *searchCache) key(f SearchFilter) string {
	return fmt.Sprintf("sitter:search:%s:%s:%s:%d:%d",
		f.Service, f.Date.Format("2006-01-02"), f.City, f.Page, f.PageSize)
}

func (c *searchCache) get(ctx context.Context, f SearchFilter) (*cachedSearch, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(f)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("sitter search cache get failed: %v", err)
		}
		return nil, false
	}

	var cached cachedSearch
	if err := json.Unmarshal(raw, &cached); err != nil {
		log.Printf("sitter search cache decode failed: %v", err)
		return nil, false
	}
	return &cached, true
}

func (c *searchCache) set(ctx context.Context, f SearchFilter, profiles []*Profile, total int) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(cachedSearch{Profiles: profiles, Total: total})
	if err != nil {
		log.Printf("sitter search cache encode failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, c.key(f), raw, c.ttl).Err(); err != nil {
		log.Printf("sitter search cache set failed: %v", err)
	}
}
