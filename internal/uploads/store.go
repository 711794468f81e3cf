package uploads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotFound = errors.New("upload not found")

// Object загруженный файл вместе с его content type
type Object struct {
	Data        []byte
	ContentType string
}

type Store interface {
	Put(ctx context.Context, id string, obj Object) error
	Get(ctx context.Context, id string) (Object, error)
}

// RedisStore хранит загрузки в Redis с TTL: картинки живут немногим
// дольше комнат, для которых их загрузили
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, id string, obj Object) error {
	key := uploadKey(id)
	err := s.rdb.HSet(ctx, key, map[string]interface{}{
		"data": obj.Data,
		"type": obj.ContentType,
	}).Err()
	if err != nil {
		return fmt.Errorf("store upload: %w", err)
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (Object, error) {
	fields, err := s.rdb.HGetAll(ctx, uploadKey(id)).Result()
	if err != nil {
		return Object{}, fmt.Errorf("load upload: %w", err)
	}
	if len(fields) == 0 {
		return Object{}, ErrNotFound
	}
	return Object{
		Data:        []byte(fields["data"]),
		ContentType: fields["type"],
	}, nil
}

func uploadKey(id string) string {
	return "upload:" + id
}
