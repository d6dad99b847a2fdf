package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultPoolSize    = 10
)

// Config общий кэш мест. Выключен по умолчанию: один процесс обходится локальным кэшем.
type Config struct {
	Enabled         bool          `envconfig:"ENABLED" default:"false"`
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"6379"`
	Username        string        `envconfig:"USERNAME"`
	Password        string        `envconfig:"PASSWORD"`
	Database        int           `envconfig:"DATABASE" default:"0"`
	MaxRetries      int           `envconfig:"MAX_RETRIES" default:"3"` // -1 отключает повторы
	DialTimeout     time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
	PoolSize        int           `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns    int           `envconfig:"MIN_IDLE_CONNS" default:"2"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
}

// NewConnection подключается к Redis и проверяет соединение пингом.
// Нулевые таймауты и размер пула берут значения go-redis по умолчанию.
func (c *Config) NewConnection(ctx context.Context) (*redis.Client, error) {
	dialTimeout := c.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            net.JoinHostPort(c.Host, c.Port),
		Username:        c.Username,
		Password:        c.Password,
		DB:              c.Database,
		MaxRetries:      c.MaxRetries,
		DialTimeout:     dialTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		PoolSize:        poolSize,
		MinIdleConns:    c.MinIdleConns,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
