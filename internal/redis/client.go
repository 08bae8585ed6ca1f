// Package redis caches the available-items catalog listing. The database is
// authoritative; every cache failure is treated as a miss.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"foodorder/internal/models"
)

const catalogKey = "catalog:available"

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func (c *Client) GetFoodItems() ([]models.FoodItem, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, catalogKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog not cached")
		}
		return nil, fmt.Errorf("failed to get cached catalog: %w", err)
	}

	var items []models.FoodItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog: %w", err)
	}

	return items, nil
}

func (c *Client) SetFoodItems(items []models.FoodItem) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return c.rdb.Set(ctx, catalogKey, jsonData, c.ttl).Err()
}

func (c *Client) InvalidateFoodItems() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, catalogKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
