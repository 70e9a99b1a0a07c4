package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/repository"
	"career_advisor_backend/internal/validate"
	"career_advisor_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const resourceCacheKeyPrefix = "resources:"

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	Cfg          *config.Config
	Redis        *redis.Client
}

func NewResourceService(resourceRepo *repository.ResourceRepository, cfg *config.Config, rdb *redis.Client) *ResourceService {
	return &ResourceService{ResourceRepo: resourceRepo, Cfg: cfg, Redis: rdb}
}

// List serves a catalog query, fronted by a short-lived redis cache keyed on
// the full filter set. A nil or unreachable redis client falls through to
// the database.
func (s *ResourceService) List(ctx context.Context, query validate.ResourceQuery) ([]model.Resource, error) {
	key := fmt.Sprintf("%s%s:%s:%s:%d:%d",
		resourceCacheKeyPrefix, query.Tag, query.Locale, query.Type, query.Limit, query.Offset)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var resources []model.Resource
			if err := json.Unmarshal([]byte(cached), &resources); err == nil {
				return resources, nil
			}
		}
	}

	resources, err := s.ResourceRepo.List(query)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		ttl := time.Duration(s.Cfg.Cache.ResourceTTLMinutes) * time.Minute
		if raw, err := json.Marshal(resources); err == nil {
			if err := s.Redis.Set(ctx, key, raw, ttl).Err(); err != nil {
				logger.Log.Warn("Resource cache write failed", zap.Error(err))
			}
		}
	}

	return resources, nil
}
