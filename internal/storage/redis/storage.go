package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveScore(ctx context.Context, record *model.ScoreRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Record and leaderboard entry go in one round trip
	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(record.ID), data, s.cfg.ScoreTTL)
	pipe.ZAdd(ctx, leaderboardKey(record.Mode), redis.Z{
		Score:  float64(record.Score),
		Member: string(record.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetScore(ctx context.Context, id model.ScoreID) (*model.ScoreRecord, error) {
	data, err := s.client.Get(ctx, scoreKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}

	var record model.ScoreRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) DeleteScore(ctx context.Context, id model.ScoreID) error {
	record, err := s.GetScore(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrScoreNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, scoreKey(id))
	pipe.ZRem(ctx, leaderboardKey(record.Mode), string(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) TopScores(ctx context.Context, mode model.GameMode, limit int) ([]*model.ScoreRecord, error) {
	if limit == 0 {
		return nil, nil
	}
	stop := int64(limit - 1)
	if limit < 0 {
		stop = -1
	}

	key := leaderboardKey(mode)
	ids, err := s.client.ZRevRange(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, scoreKey(model.ScoreID(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	records := make([]*model.ScoreRecord, 0, len(ids))
	var expired []interface{}
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record expired, drop the stale index entry
				expired = append(expired, ids[i])
				continue
			}
			return nil, err
		}

		var record model.ScoreRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, key, expired...).Err(); err != nil {
			return nil, err
		}
	}
	return records, nil
}
