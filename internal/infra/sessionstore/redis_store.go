package sessionstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"roost/config"
	"roost/internal/domain/constants"
	"roost/internal/domain/entity"
	internalerrors "roost/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session blobs in redis so several gateway replicas
// can serve the same browser session.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisStore creates a redis-backed session store.
func NewRedisStore(cfg *config.RedisConfig, logger *slog.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisStore{client: client, logger: logger}
}

// Ping verifies connectivity during startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return internalerrors.Wrap(err, "failed to ping redis")
	}

	return nil
}

// Close releases the client connections.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(sessionID string) string {
	return constants.SessionKeyPrefix + "-" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) *entity.Session {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if !internalerrors.Is(err, redis.Nil) {
			s.logger.Warn("failed to read session blob, treating as signed out",
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn("corrupt session blob, treating as signed out",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return nil
	}

	return &session
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, session *entity.Session) {
	if session == nil {
		return
	}

	raw, err := json.Marshal(session)
	if err != nil {
		s.logger.Warn("failed to encode session blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return
	}

	// No TTL: an expired access token can still be refreshed, so the
	// blob outlives the token and only sign-out removes it.
	if err := s.client.Set(ctx, s.key(sessionID), raw, 0).Err(); err != nil {
		s.logger.Warn("failed to write session blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		s.logger.Warn("failed to delete session blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}
}

func (s *RedisStore) Keys(ctx context.Context) []string {
	prefix := constants.SessionKeyPrefix + "-"

	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("failed to scan session keys", slog.Any("error", err))
	}

	return keys
}

func (s *RedisStore) DeleteAll(ctx context.Context) {
	for _, sessionID := range s.Keys(ctx) {
		s.Delete(ctx, sessionID)
	}
}
