package admin

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	OverviewCacheKey = "admin:overview"
	overviewCacheTTL = 60 * time.Second
)

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context) (OverviewResponse, error)
}

type service struct {
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo: repo,
		rdb:  rdb,
		sf:   &singleflight.Group{},
	}
}

// Overview serves the dashboard counters. The counts scan four tables, so a
// short redis TTL plus singleflight keeps dashboard refreshes from piling
// onto the database.
func (s *service) Overview(ctx context.Context) (OverviewResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OverviewCacheKey).Result(); err == nil {
			var resp OverviewResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OverviewCacheKey, func() (interface{}, error) {
		counts, err := s.repo.CountOverview(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(counts); err == nil {
				s.rdb.Set(ctx, OverviewCacheKey, jsonData, overviewCacheTTL)
			}
		}

		return counts, nil
	})
	if err != nil {
		return OverviewResponse{}, err
	}

	return v.(OverviewResponse), nil
}
