package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/anonto42/connectly/web/internal/models"
	"github.com/redis/go-redis/v9"
)

// PrefixLatestPost namespaces the per-user latest post key
const PrefixLatestPost = "connectly:latest_post:"

// LatestPostStore remembers the most recently created post per user
type LatestPostStore interface {
	PutLatest(ctx context.Context, owner string, post *models.Post) error
	Latest(ctx context.Context, owner string) (*models.Post, error)
}

// RedisLatestPostStore keeps latest posts in Redis with a TTL
type RedisLatestPostStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisLatestPostStore wraps an existing Redis client
func NewRedisLatestPostStore(client redis.UniversalClient, ttl time.Duration) *RedisLatestPostStore {
	return &RedisLatestPostStore{client: client, ttl: ttl}
}

// PutLatest stores post as owner's latest post
func (s *RedisLatestPostStore) PutLatest(ctx context.Context, owner string, post *models.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("marshal post: %w", err)
	}
	if err := s.client.Set(ctx, PrefixLatestPost+owner, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set latest post: %w", err)
	}
	return nil
}

// Latest returns owner's latest post, or nil when none is stored
func (s *RedisLatestPostStore) Latest(ctx context.Context, owner string) (*models.Post, error) {
	data, err := s.client.Get(ctx, PrefixLatestPost+owner).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get latest post: %w", err)
	}

	var post models.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("unmarshal post: %w", err)
	}
	return &post, nil
}

// MemoryLatestPostStore is the in-process fallback when Redis is not configured
type MemoryLatestPostStore struct {
	mu    sync.RWMutex
	posts map[string]models.Post
}

// NewMemoryLatestPostStore creates an empty in-memory store
func NewMemoryLatestPostStore() *MemoryLatestPostStore {
	return &MemoryLatestPostStore{posts: make(map[string]models.Post)}
}

func (s *MemoryLatestPostStore) PutLatest(ctx context.Context, owner string, post *models.Post) error {
	if post == nil {
		return fmt.Errorf("nil post")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[owner] = *post
	return nil
}

func (s *MemoryLatestPostStore) Latest(ctx context.Context, owner string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[owner]
	if !ok {
		return nil, nil
	}
	return &post, nil
}
