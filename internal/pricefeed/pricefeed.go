// Package pricefeed proxies the upstream SOL/USD price with a short Redis
// cache so bursts of page loads do not hammer the public feed.
package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKey = "paylink:sol_price_usd"

type Service struct {
	feedURL    string
	httpClient *http.Client
	rdb        *redis.Client
	ttl        time.Duration
	log        *zap.Logger
}

func New(feedURL string, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

// Price returns the cached price when fresh, otherwise fetches and re-caches.
// Redis faults fall through to a live fetch.
func (s *Service) Price(ctx context.Context) (float64, error) {
	price, err := s.rdb.Get(ctx, cacheKey).Float64()
	if err == nil {
		return price, nil
	}
	if err != redis.Nil {
		s.log.Warn("price cache read failed", zap.Error(err))
	}

	price, err = s.fetch(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.rdb.Set(ctx, cacheKey, price, s.ttl).Err(); err != nil {
		s.log.Warn("price cache write failed", zap.Error(err))
	}
	return price, nil
}

func (s *Service) fetch(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("price feed unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price feed returned %d", resp.StatusCode)
	}

	var payload struct {
		Solana struct {
			USD float64 `json:"usd"`
		} `json:"solana"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}
	if payload.Solana.USD <= 0 {
		return 0, fmt.Errorf("price feed returned no usd quote")
	}
	return payload.Solana.USD, nil
}

// StartRefresher keeps the cache warm by refetching on the cache interval.
// Returns the scheduler so the caller can shut it down.
func (s *Service) StartRefresher(ctx context.Context) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.ttl),
		gocron.NewTask(func() {
			price, err := s.fetch(ctx)
			if err != nil {
				s.log.Warn("price refresh failed", zap.Error(err))
				return
			}
			if err := s.rdb.Set(ctx, cacheKey, price, s.ttl).Err(); err != nil {
				s.log.Warn("price cache write failed", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
