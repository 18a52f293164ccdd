package client

import (
	"github.com/vibe-gaming/profile-service/internal/config"
	"github.com/vibe-gaming/profile-service/internal/queue/asynqserver"

	"github.com/hibiken/asynq"
)

// New returns a producer bound to the redis the asynq server consumes from.
// The caller owns the client and must Close it.
func New(cfg config.Cache) *asynq.Client {
	return asynq.NewClient(asynqserver.RedisOptions(cfg))
}
