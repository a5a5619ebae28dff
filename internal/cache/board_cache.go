package cache

import (
	"context"
	"encoding/json"
	"time"

	"boardhub/internal/logger"
	"boardhub/internal/model"

	"github.com/redis/go-redis/v9"
)

// BoardCache caches each user's board listing under a per-username key so a
// fresh board shows up for its creator immediately after the write path
// deletes the key.
type BoardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBoardCache(client *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{client: client, ttl: ttl}
}

func boardsKey(username string) string {
	return "boards:" + username
}

// Get returns the cached listing for a username, or ok=false on a miss.
// Redis errors degrade to a miss; the database remains the source of truth.
func (c *BoardCache) Get(ctx context.Context, username string) ([]model.Board, bool) {
	raw, err := c.client.Get(ctx, boardsKey(username)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Get().Warn().Err(err).Str("username", username).Msg("board cache get failed")
		}
		return nil, false
	}

	var boards []model.Board
	if err := json.Unmarshal(raw, &boards); err != nil {
		logger.Get().Warn().Err(err).Str("username", username).Msg("board cache entry corrupt")
		return nil, false
	}
	return boards, true
}

// Set stores a listing with the configured TTL. Failures are logged and
// otherwise ignored.
func (c *BoardCache) Set(ctx context.Context, username string, boards []model.Board) {
	raw, err := json.Marshal(boards)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, boardsKey(username), raw, c.ttl).Err(); err != nil {
		logger.Get().Warn().Err(err).Str("username", username).Msg("board cache set failed")
	}
}

// Invalidate drops a user's cached listing so their next read reflects a
// just-created board.
func (c *BoardCache) Invalidate(ctx context.Context, username string) {
	if err := c.client.Del(ctx, boardsKey(username)).Err(); err != nil {
		logger.Get().Warn().Err(err).Str("username", username).Msg("board cache invalidate failed")
	}
}
