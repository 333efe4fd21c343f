// File: services/assistant/store.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"barberpro/models"

	"github.com/go-redis/redis/v8"
)

const chatSessionPrefix = "chat:session:"

// RedisConversationStore keeps conversation state in Redis with a TTL, so
// abandoned sessions expire on their own.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

func (s *RedisConversationStore) Get(ctx context.Context, sessionID string) (*models.Conversation, error) {
	key := chatSessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.Conversation{}, nil
	}
	if err != nil {
		return nil, err
	}
	var conv models.Conversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *RedisConversationStore) Save(ctx context.Context, sessionID string, conv *models.Conversation) error {
	key := chatSessionPrefix + sessionID
	b, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisConversationStore) Clear(ctx context.Context, sessionID string) error {
	key := chatSessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
