package ensemble

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository stores open polls and their responses. Poll state is ephemeral:
// the draft either becomes a confirmed reservation or expires.
type Repository interface {
	CreatePoll(ctx context.Context, p *Poll) error
	GetPoll(ctx context.Context, id string) (*Poll, error)

	// SaveResponse upserts one member's response; a resubmission replaces the
	// previous one.
	SaveResponse(ctx context.Context, pollID string, resp Response) error
	ListResponses(ctx context.Context, pollID string) ([]Response, error)

	DeletePoll(ctx context.Context, id string) error
}

type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) Repository {
	return &redisRepository{client: client, ttl: ttl}
}

func pollKey(id string) string {
	return "ensemble:poll:" + id
}

func responsesKey(id string) string {
	return "ensemble:poll:" + id + ":responses"
}

func (r *redisRepository) CreatePoll(ctx context.Context, p *Poll) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal poll failed: %w", err)
	}

	ok, err := r.client.SetNX(ctx, pollKey(p.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("store poll failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("poll id collision: %s", p.ID)
	}
	return nil
}

func (r *redisRepository) GetPoll(ctx context.Context, id string) (*Poll, error) {
	data, err := r.client.Get(ctx, pollKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPollNotFound
		}
		return nil, fmt.Errorf("load poll failed: %w", err)
	}

	var p Poll
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal poll failed: %w", err)
	}
	return &p, nil
}

func (r *redisRepository) SaveResponse(ctx context.Context, pollID string, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response failed: %w", err)
	}

	key := responsesKey(pollID)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, resp.MemberName, data)
	// Keep the responses hash on the same clock as the poll itself.
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store response failed: %w", err)
	}
	return nil
}

func (r *redisRepository) ListResponses(ctx context.Context, pollID string) ([]Response, error) {
	entries, err := r.client.HGetAll(ctx, responsesKey(pollID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load responses failed: %w", err)
	}

	responses := make([]Response, 0, len(entries))
	for _, raw := range entries {
		var resp Response
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			return nil, fmt.Errorf("unmarshal response failed: %w", err)
		}
		responses = append(responses, resp)
	}

	// HGETALL order is unspecified; keep the output deterministic.
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].MemberName < responses[j].MemberName
	})
	return responses, nil
}

func (r *redisRepository) DeletePoll(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, pollKey(id), responsesKey(id)).Err(); err != nil {
		return fmt.Errorf("delete poll failed: %w", err)
	}
	return nil
}
