package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var rdb *redis.Client

// InitRedis connects the optional user-state cache. The application works
// without it; every lookup then falls through to the database.
func InitRedis(addr, password string, db int) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}
	rdb = client
	return nil
}

func Close() {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logrus.WithError(err).Warn("closing redis client")
		}
		rdb = nil
	}
}

func Enabled() bool { return rdb != nil }

// UserState is the per-user authorization snapshot checked on every
// protected request.
type UserState struct {
	Role   string `json:"role"`
	Banned bool   `json:"banned"`
}

const userStateTTL = 5 * time.Minute

func userStateKey(uid int) string { return fmt.Sprintf("user:state:%d", uid) }

// GetUserState returns the cached state for a user, if present.
func GetUserState(ctx context.Context, uid int) (*UserState, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, userStateKey(uid)).Result()
	if err != nil {
		return nil, false
	}
	var state UserState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, false
	}
	return &state, true
}

// SetUserState caches a user's role/ban snapshot.
func SetUserState(ctx context.Context, uid int, state UserState) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, userStateKey(uid), raw, userStateTTL).Err(); err != nil {
		logrus.WithError(err).WithField("uid", uid).Warn("caching user state")
	}
}

// InvalidateUserState drops the cached snapshot, called after role or ban
// changes so the next request sees the new state.
func InvalidateUserState(ctx context.Context, uid int) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, userStateKey(uid)).Err(); err != nil {
		logrus.WithError(err).WithField("uid", uid).Warn("invalidating user state")
	}
}
