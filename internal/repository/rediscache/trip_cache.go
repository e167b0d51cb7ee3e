// Package rediscache fronts the trip repository with a Redis cache so
// repeated reads of the same trip code skip Postgres.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"tripplanner/internal/domain"
)

const tripKeyPrefix = "trip:"

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type tripCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTripCache returns a TripCache storing JSON-encoded trips under
// "trip:<code>" with the given TTL.
func NewTripCache(client *redis.Client, ttl time.Duration) domain.TripCache {
	return &tripCache{client: client, ttl: ttl}
}

func (c *tripCache) Get(ctx context.Context, code string) (*domain.Trip, bool, error) {
	raw, err := c.client.Get(ctx, tripKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var trip domain.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		// A corrupt entry behaves like a miss; the repository is authoritative.
		return nil, false, nil
	}
	return &trip, true, nil
}

func (c *tripCache) Set(ctx context.Context, trip *domain.Trip) error {
	raw, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, tripKeyPrefix+trip.TripCode, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *tripCache) Delete(ctx context.Context, code string) error {
	if err := c.client.Del(ctx, tripKeyPrefix+code).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
