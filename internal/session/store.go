package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Session: sess:{session_id} -> JSON(Data)
	KeySession = "sess:%s"
)

var ErrNotFound = errors.New("session not found")

// Data はセッションに載せる会員情報。購入フローは読み取りのみ。
type Data struct {
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type Store interface {
	Create(ctx context.Context, d Data) (string, error)
	Get(ctx context.Context, sessionID string) (Data, error)
	Delete(ctx context.Context, sessionID string) error
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, d Data) (string, error) {
	id := uuid.NewString()

	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, fmt.Sprintf(KeySession, id), b, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Data, error) {
	b, err := s.rdb.Get(ctx, fmt.Sprintf(KeySession, sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, err
	}

	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(KeySession, sessionID)).Err()
}
