package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound ключа нет в кэше
var ErrKeyNotFound = errors.New("key not found")

// Cache общий внешний кэш строк, разделяемый между репликами бота
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set с ttl == 0 хранит значение без срока жизни
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
