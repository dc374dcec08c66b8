// Package cache holds the Valkey (Redis-compatible) client bootstrap and
// the response cache for public API payloads.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// valkeyDialTimeout bounds the startup ping; a dead Valkey should fail
// the boot quickly rather than hang it.
const valkeyDialTimeout = 5 * time.Second

// ConnectValkey dials the Valkey instance that backs sessions and the
// response cache. The connection is verified with a ping before the
// client is handed out.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), valkeyDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping %s: %w", addr, err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}
