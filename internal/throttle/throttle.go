// Package throttle ограничивает частоту выдачи кодов подтверждения на один адресат.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter считает события по ключу в окне фиксированной длины
type Limiter interface {
	// Allow регистрирует событие и сообщает, укладывается ли оно в лимит
	Allow(ctx context.Context, key string) (bool, error)
}

// NoopLimiter пропускает все события (redis не настроен)
type NoopLimiter struct{}

func (NoopLimiter) Allow(ctx context.Context, key string) (bool, error) { return true, nil }

// RedisLimiter - счетчик INCR + TTL в транзакции redis, EXPIRE для ключа без срока жизни
type RedisLimiter struct {
	client *redis.Client
	prefix string
	max    int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, max int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		max:    max,
		window: window,
	}
}

func (l *RedisLimiter) Key(key string) string {
	return fmt.Sprintf("%s:%s", l.prefix, key)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.max <= 0 {
		return true, nil
	}

	redisKey := l.Key(key)
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.TTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("throttle counter %s: %w", redisKey, err)
	}
	count := incr.Val()

	// ключ без срока жизни получает окно: первое событие или прошлый EXPIRE не прошел
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire %s: %w", redisKey, err)
		}
	}

	return count <= l.max, nil
}

// NewRedisClient создает клиента и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
