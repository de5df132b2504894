package service

import (
	"context"
	"encoding/json"
	"time"

	"litgen_backend/internal/model"
	"litgen_backend/internal/repository"
	"litgen_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const standardsCacheTTL = 12 * time.Hour

type StandardService struct {
	repo  *repository.StandardRepository
	redis *redis.Client
}

// NewStandardService accepts a nil redis client; caching is then
// skipped and every read hits the database.
func NewStandardService(repo *repository.StandardRepository, rdb *redis.Client) *StandardService {
	return &StandardService{repo: repo, redis: rdb}
}

// Resolve maps client-supplied standard identifiers to rows. Each
// identifier is tried as an ID first, then as a CCSS code. Unknown
// identifiers are skipped rather than failing the whole request; the
// caller decides what an empty result means.
func (s *StandardService) Resolve(ids []string) []model.Standard {
	standards := make([]model.Standard, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		std, err := s.repo.FindByID(id)
		if err != nil {
			std, err = s.repo.FindByCode(id)
		}
		if err != nil {
			logger.Log.Warn("unknown standard identifier", zap.String("id", id))
			continue
		}
		if seen[std.Code] {
			continue
		}
		seen[std.Code] = true
		standards = append(standards, *std)
	}
	return standards
}

// CategoriesForGrade returns the grade's standard categories with their
// standards nested, cached in redis for 12 hours. The reference tables
// only change on reseed, so a stale window that long is acceptable.
func (s *StandardService) CategoriesForGrade(ctx context.Context, gradeID string) ([]model.StandardCategory, error) {
	cacheKey := "standards:grade:" + gradeID

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var categories []model.StandardCategory
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.repo.CategoriesByGrade(gradeID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		standards, err := s.repo.StandardsByCategory(categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Standards = dedupeByCode(standards)
	}

	if s.redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, standardsCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache standards", zap.String("grade", gradeID), zap.Error(err))
			}
		}
	}

	return categories, nil
}

// dedupeByCode drops later standards carrying an already-seen CCSS
// code, keeping database order.
func dedupeByCode(standards []model.Standard) []model.Standard {
	seen := make(map[string]bool, len(standards))
	out := standards[:0]
	for _, s := range standards {
		if seen[s.Code] {
			continue
		}
		seen[s.Code] = true
		out = append(out, s)
	}
	return out
}
