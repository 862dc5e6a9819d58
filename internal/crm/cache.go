package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedSource 带 Redis 缓存的工单来源装饰器（缓存故障时直接回源）
type CachedSource struct {
	source      CaseSource
	redisClient *redis.Client
	ttl         time.Duration
	logger      *zap.Logger
}

// NewCachedSource 创建带缓存的工单来源
func NewCachedSource(source CaseSource, redisClient *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{
		source:      source,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

// Lookup 先查缓存，未命中时回源并写缓存
func (s *CachedSource) Lookup(ctx context.Context, caseNumber string) (*CaseRecord, error) {
	key := cacheKey(caseNumber)

	data, err := s.redisClient.Get(ctx, key).Result()
	if err == nil {
		var record CaseRecord
		if err := json.Unmarshal([]byte(data), &record); err == nil {
			s.logger.Debug("工单缓存命中", zap.String("caseNumber", caseNumber))
			return &record, nil
		}
		s.logger.Warn("工单缓存内容损坏，回源查询", zap.String("caseNumber", caseNumber))
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("读取工单缓存失败", zap.Error(err))
	}

	record, err := s.source.Lookup(ctx, caseNumber)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(record); err == nil {
		if err := s.redisClient.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.logger.Warn("写入工单缓存失败", zap.Error(err))
		}
	}

	return record, nil
}

// cacheKey 工单缓存键
func cacheKey(caseNumber string) string {
	return fmt.Sprintf("crm_case:%s", caseNumber)
}
