package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/hasselmann007-dev/pink-store-v2/models"
)

// NewRedisClient initializes and returns a Redis client.
func NewRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis")
	return client
}

// RedisPaymentStore persists payment snapshots in Redis so status survives
// a backend restart. Snapshots are stored as JSON and never expire.
type RedisPaymentStore struct {
	client *redis.Client
}

// NewRedisPaymentStore creates a Redis-backed payment store.
func NewRedisPaymentStore(client *redis.Client) *RedisPaymentStore {
	return &RedisPaymentStore{client: client}
}

func (s *RedisPaymentStore) getKey(transactionID string) string {
	return fmt.Sprintf("payment:tx:%s", transactionID)
}

func (s *RedisPaymentStore) Record(ctx context.Context, transactionID string, update PaymentUpdate) error {
	key := s.getKey(transactionID)

	prior, err := s.load(ctx, key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(merge(prior, transactionID, update))
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisPaymentStore) Get(ctx context.Context, transactionID string) (*models.PaymentRecord, error) {
	record, err := s.load(ctx, s.getKey(transactionID))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrPaymentNotFound
	}
	return record, nil
}

func (s *RedisPaymentStore) load(ctx context.Context, key string) (*models.PaymentRecord, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record models.PaymentRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
