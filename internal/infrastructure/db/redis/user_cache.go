package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskcase/task-api/internal/core/domain"
	"github.com/taskcase/task-api/internal/core/ports"
)

const userCacheTTL = 30 * time.Second

// UserCache is a short-lived Redis cache of resolved users, keyed by email.
// User records are immutable once created, so a cached entry can never be
// stale within its TTL. Key format: user:<email>
type UserCache struct {
	client *redis.Client
}

func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// cachedUser is the stored shape. The hash is included deliberately: the
// cache lives server-side and the resolver needs the full record.
type cachedUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Get returns the cached user or nil on a miss.
func (c *UserCache) Get(ctx context.Context, email string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("user cache decode: %w", err)
	}
	return &domain.User{
		ID:           cu.ID,
		Name:         cu.Name,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
	}, nil
}

// Set stores the user with the cache TTL.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	})
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.Email), raw, userCacheTTL).Err()
}

func (c *UserCache) key(email string) string {
	return "user:" + email
}

var _ ports.UserCache = (*UserCache)(nil)
