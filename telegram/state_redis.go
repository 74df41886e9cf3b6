package telegram

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStateStore keeps chat state in redis with a TTL, so review
// flows survive restarts and can be shared across instances. An
// expired key reads as idle.
type RedisStateStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{Client: client, TTL: ttl}
}

func stateKey(chatID int64) string {
	return "chat_state:" + strconv.FormatInt(chatID, 10)
}

func (s *RedisStateStore) Get(chatID int64) ChatState {
	v, err := s.Client.Get(context.Background(), stateKey(chatID)).Result()
	if err == redis.Nil {
		return StateIdle
	}
	if err != nil {
		log.Printf("redis get chat state: %v", err)
		return StateIdle
	}
	return ChatState(v)
}

func (s *RedisStateStore) Set(chatID int64, state ChatState) {
	if err := s.Client.Set(context.Background(), stateKey(chatID), string(state), s.TTL).Err(); err != nil {
		log.Printf("redis set chat state: %v", err)
	}
}

func (s *RedisStateStore) Clear(chatID int64) {
	if err := s.Client.Del(context.Background(), stateKey(chatID)).Err(); err != nil {
		log.Printf("redis clear chat state: %v", err)
	}
}
