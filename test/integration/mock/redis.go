package mock

import (
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process Redis server with a client pointed at it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts a fresh server. Each scenario gets its own so that one can
// be stopped without affecting the others.
func NewRedis() *Redis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return &Redis{
		Server: server,
		Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
	}
}

// Expire moves the server clock forward so keys with a TTL below d disappear.
func (r *Redis) Expire(d time.Duration) {
	r.Server.FastForward(d)
}

// Stop makes every following command fail with a connection error.
func (r *Redis) Stop() {
	r.Server.Close()
}

func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
