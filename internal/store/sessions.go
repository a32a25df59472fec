package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for unknown or expired session tokens.
var ErrSessionNotFound = fmt.Errorf("session not found")

// SessionRepository persists per-session state snapshots. Snapshots are
// working state, not durable data: an expired session simply restarts the
// flow, and only confirmed bookings survive via the durable store.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (AppState, error)
	Set(ctx context.Context, sessionID string, state AppState) error
	Delete(ctx context.Context, sessionID string) error
}

// MemorySessions keeps snapshots in a map. The default backend.
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[string]AppState
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]AppState)}
}

func (m *MemorySessions) Get(ctx context.Context, sessionID string) (AppState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.sessions[sessionID]
	if !ok {
		return AppState{}, ErrSessionNotFound
	}
	return state, nil
}

func (m *MemorySessions) Set(ctx context.Context, sessionID string, state AppState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = state
	return nil
}

func (m *MemorySessions) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// RedisSessions keeps snapshots in Redis with a TTL, so abandoned flows
// age out on their own.
type RedisSessions struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures the Redis session backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisSessions(cfg RedisConfig) (*RedisSessions, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSessions{client: client, ttl: cfg.TTL}, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *RedisSessions) Get(ctx context.Context, sessionID string) (AppState, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return AppState{}, ErrSessionNotFound
	}
	if err != nil {
		return AppState{}, fmt.Errorf("failed to read session: %w", err)
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return AppState{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return state, nil
}

func (r *RedisSessions) Set(ctx context.Context, sessionID string, state AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(sessionID), data, r.ttl).Err()
}

func (r *RedisSessions) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (r *RedisSessions) Close() error {
	return r.client.Close()
}
