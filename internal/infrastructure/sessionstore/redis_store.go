package sessionstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"aitoolhub-server/services/hub-api/internal/domain/session"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

const keyPrefix = "hub:session:"

// refreshScript slides a session's expiry by its own stored TTL in one
// atomic step. Returns the TTL in milliseconds, or nil when the key is gone.
var refreshScript = redis.NewScript(`
local ttl = redis.call('HGET', KEYS[1], 'ttl_ms')
if not ttl then
	return false
end
redis.call('PEXPIRE', KEYS[1], ttl)
return ttl
`)

// RedisStore keeps sessions in Redis hashes with native key expiry, so a
// fleet of API servers shares one session space and expired entries vanish
// without sweeping.
type RedisStore struct {
	client *redis.Client
}

var _ session.Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, token string) (*session.Session, error) {
	key := keyPrefix + token

	pipe := s.client.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to read session from redis",
			err,
			"3c8d0f16-9a42-4e75-b1c8-d60e2f9a4731",
		)
	}

	fields := fieldsCmd.Val()
	if len(fields) == 0 {
		return nil, session.ErrNotFound
	}

	sess, err := sessionFromFields(token, fields)
	if err != nil {
		return nil, err
	}
	if remaining := ttlCmd.Val(); remaining > 0 {
		sess.ExpiresAt = time.Now().Add(remaining)
	}
	return sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sess *session.Session) error {
	key := keyPrefix + sess.Token

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		"user_id", strconv.FormatUint(uint64(sess.UserID), 10),
		"ttl_ms", strconv.FormatInt(sess.TTL.Milliseconds(), 10),
		"created_at", strconv.FormatInt(sess.CreatedAt.UnixMilli(), 10),
	)
	pipe.PExpire(ctx, key, sess.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to write session to redis",
			err,
			"8f2a6d93-1c57-4b08-ae94-70d3e5f1c826",
		)
	}
	return nil
}

func (s *RedisStore) Refresh(ctx context.Context, token string) (*session.Session, error) {
	key := keyPrefix + token

	res, err := refreshScript.Run(ctx, s.client, []string{key}).Result()
	if errors.Is(err, redis.Nil) || res == nil {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to refresh session in redis",
			err,
			"d41b9e72-5f06-4c38-82ad-16e8f0c3a759",
		)
	}
	return s.Get(ctx, token)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to delete session from redis",
			err,
			"5a0c3f81-7e24-4d96-b3f5-c92d6e1a8047",
		)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys natively.
func (s *RedisStore) DeleteExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func sessionFromFields(token string, fields map[string]string) (*session.Session, error) {
	userID, err := strconv.ParseUint(fields["user_id"], 10, 64)
	if err != nil {
		return nil, session.ErrNotFound
	}
	ttlMs, err := strconv.ParseInt(fields["ttl_ms"], 10, 64)
	if err != nil {
		return nil, session.ErrNotFound
	}
	createdMs, _ := strconv.ParseInt(fields["created_at"], 10, 64)

	return &session.Session{
		Token:     token,
		UserID:    uint(userID),
		TTL:       time.Duration(ttlMs) * time.Millisecond,
		CreatedAt: time.UnixMilli(createdMs),
	}, nil
}
